package database

import (
	"context"
	"strings"

	"github.com/akyairhashvil/countdown/internal/models"
)

// ListPresets returns presets in rank order.
func (d *Database) ListPresets(ctx context.Context) ([]models.Preset, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, label, seconds, rank
		FROM presets
		ORDER BY rank ASC, id ASC`)
	if err != nil {
		return nil, wrapPresetErr("list", 0, err)
	}
	defer rows.Close()

	var presets []models.Preset
	for rows.Next() {
		var p models.Preset
		if err := rows.Scan(&p.ID, &p.Label, &p.Seconds, &p.Rank); err != nil {
			return nil, wrapPresetErr("scan", 0, err)
		}
		presets = append(presets, p)
	}
	return presets, wrapPresetErr("list", 0, rows.Err())
}

// AddPreset appends a preset after the existing ones.
func (d *Database) AddPreset(ctx context.Context, label string, seconds int) (int64, error) {
	label = strings.TrimSpace(label)
	if label == "" || seconds <= 0 {
		return 0, ErrInvalidPreset
	}

	maxRank, err := d.getMaxPresetRank(ctx)
	if err != nil {
		return 0, wrapPresetErr("rank", 0, err)
	}

	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, "INSERT INTO presets (label, seconds, rank) VALUES (?, ?, ?)", label, seconds, maxRank+1)
	if err != nil {
		return 0, wrapPresetErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapPresetErr("add", 0, err)
}

// DeletePreset removes the preset with id.
func (d *Database) DeletePreset(ctx context.Context, id int64) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, "DELETE FROM presets WHERE id = ?", id)
	if err != nil {
		return wrapPresetErr("delete", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapPresetErr("delete", id, err)
	}
	if n == 0 {
		return wrapPresetErr("delete", id, ErrPresetNotFound)
	}
	return nil
}

// SeedPresets inserts presets only when the table is empty, in one transaction.
func (d *Database) SeedPresets(ctx context.Context, presets []models.Preset) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrapPresetErr("seed", 0, err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM presets").Scan(&count); err != nil {
		return wrapPresetErr("seed", 0, err)
	}
	if count > 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO presets (label, seconds, rank) VALUES (?, ?, ?)")
	if err != nil {
		return wrapPresetErr("seed", 0, err)
	}
	defer stmt.Close()

	for i, p := range presets {
		if strings.TrimSpace(p.Label) == "" || p.Seconds <= 0 {
			return wrapPresetErr("seed", 0, ErrInvalidPreset)
		}
		if _, err := stmt.ExecContext(ctx, p.Label, p.Seconds, i+1); err != nil {
			return wrapPresetErr("seed", 0, err)
		}
	}
	return wrapPresetErr("seed", 0, tx.Commit())
}
