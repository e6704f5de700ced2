package models

import "time"

// Outcome records how a countdown ended.
type Outcome string

const (
	OutcomeExpired   Outcome = "expired"
	OutcomeCancelled Outcome = "cancelled"
)

// Preset is a stored fixed duration bound to a function key.
type Preset struct {
	ID      int64
	Label   string
	Seconds int
	Rank    int
}

// Countdown is one finished run of the timer.
type Countdown struct {
	ID        int64
	Session   string // correlates the row with log lines
	Seconds   int    // duration the countdown was started with
	Remaining int    // seconds left when it ended; zero when expired
	Outcome   Outcome
	StartedAt time.Time
	EndedAt   time.Time
}

// Elapsed is the time actually counted down.
func (c Countdown) Elapsed() time.Duration {
	return time.Duration(c.Seconds-c.Remaining) * time.Second
}
