// Package history turns engine events into stored countdown records.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/akyairhashvil/countdown/internal/util"
)

// Recorder observes an engine and stores a row each time a countdown ends,
// either by expiring or by being reset while running or paused.
type Recorder struct {
	ctx   context.Context
	store database.HistoryRepository
	now   func() time.Time

	active    bool
	session   string
	startedAt time.Time
	remaining int
}

// NewRecorder returns a recorder writing to store. now defaults to time.Now.
func NewRecorder(ctx context.Context, store database.HistoryRepository, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{ctx: ctx, store: store, now: now}
}

// Observe is a timer.Observer.
func (r *Recorder) Observe(ev timer.Event) {
	switch ev.Kind {
	case timer.EventStarted:
		r.active = true
		r.session = uuid.NewString()
		r.startedAt = r.now()
		util.FromContext(r.ctx).Infow("countdown started", "session", r.session, "seconds", ev.Initial)
		r.remaining = ev.Remaining
	case timer.EventUpdated, timer.EventPaused, timer.EventResumed:
		if r.active {
			r.remaining = ev.Remaining
		}
	case timer.EventExpired:
		r.finish(models.OutcomeExpired, ev.Initial, 0)
	case timer.EventReset:
		if ev.Previous == timer.Running || ev.Previous == timer.Paused {
			r.finish(models.OutcomeCancelled, ev.Initial, r.remaining)
		}
	}
}

func (r *Recorder) finish(outcome models.Outcome, initial, remaining int) {
	if !r.active {
		return
	}
	r.active = false
	if r.store == nil {
		return
	}
	_, err := r.store.RecordCountdown(r.ctx, models.Countdown{
		Session:   r.session,
		Seconds:   initial,
		Remaining: remaining,
		Outcome:   outcome,
		StartedAt: r.startedAt,
		EndedAt:   r.now(),
	})
	util.LogError(r.ctx, "record countdown", err)
	util.FromContext(r.ctx).Infow("countdown finished", "session", r.session, "outcome", outcome, "remaining", remaining)
}
