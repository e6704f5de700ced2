package database

import "context"

// getMaxPresetRank returns the highest preset rank.
func (d *Database) getMaxPresetRank(ctx context.Context) (int, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var maxRank int
	err := d.DB.QueryRowContext(ctx, "SELECT COALESCE(MAX(rank), 0) FROM presets").Scan(&maxRank)
	return maxRank, err
}
