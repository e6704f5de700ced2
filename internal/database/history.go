package database

import (
	"context"

	"github.com/akyairhashvil/countdown/internal/models"
)

// RecordCountdown stores a finished countdown.
func (d *Database) RecordCountdown(ctx context.Context, c models.Countdown) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO countdowns (session, seconds, remaining, outcome, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.Session, c.Seconds, c.Remaining, string(c.Outcome), c.StartedAt.UTC(), c.EndedAt.UTC())
	if err != nil {
		return 0, wrapCountdownErr("record", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapCountdownErr("record", 0, err)
}

// ListCountdowns returns the most recent countdowns first. limit <= 0 means all.
func (d *Database) ListCountdowns(ctx context.Context, limit int) ([]models.Countdown, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	if limit <= 0 {
		limit = -1
	}
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, session, seconds, remaining, outcome, started_at, ended_at
		FROM countdowns
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapCountdownErr("list", 0, err)
	}
	defer rows.Close()

	var out []models.Countdown
	for rows.Next() {
		var (
			c       models.Countdown
			outcome string
		)
		if err := rows.Scan(&c.ID, &c.Session, &c.Seconds, &c.Remaining, &outcome, &c.StartedAt, &c.EndedAt); err != nil {
			return nil, wrapCountdownErr("scan", 0, err)
		}
		c.Outcome = models.Outcome(outcome)
		out = append(out, c)
	}
	return out, wrapCountdownErr("list", 0, rows.Err())
}
