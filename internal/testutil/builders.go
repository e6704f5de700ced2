package testutil

import (
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
)

// CountdownBuilder provides a fluent API for creating test countdowns.
type CountdownBuilder struct {
	countdown models.Countdown
}

func NewCountdown() *CountdownBuilder {
	start := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	return &CountdownBuilder{
		countdown: models.Countdown{
			Seconds:   300,
			Outcome:   models.OutcomeExpired,
			StartedAt: start,
			EndedAt:   start.Add(300 * time.Second),
		},
	}
}

func (b *CountdownBuilder) WithSeconds(s int) *CountdownBuilder {
	b.countdown.Seconds = s
	b.countdown.EndedAt = b.countdown.StartedAt.Add(time.Duration(s-b.countdown.Remaining) * time.Second)
	return b
}

func (b *CountdownBuilder) WithSession(s string) *CountdownBuilder {
	b.countdown.Session = s
	return b
}

func (b *CountdownBuilder) StartedAt(t time.Time) *CountdownBuilder {
	elapsed := b.countdown.EndedAt.Sub(b.countdown.StartedAt)
	b.countdown.StartedAt = t
	b.countdown.EndedAt = t.Add(elapsed)
	return b
}

// Cancelled marks the countdown as reset with remaining seconds left.
func (b *CountdownBuilder) Cancelled(remaining int) *CountdownBuilder {
	b.countdown.Outcome = models.OutcomeCancelled
	b.countdown.Remaining = remaining
	b.countdown.EndedAt = b.countdown.StartedAt.Add(time.Duration(b.countdown.Seconds-remaining) * time.Second)
	return b
}

func (b *CountdownBuilder) Build() models.Countdown {
	return b.countdown
}

// PresetBuilder provides a fluent API for creating test presets.
type PresetBuilder struct {
	preset models.Preset
}

func NewPreset() *PresetBuilder {
	return &PresetBuilder{preset: models.Preset{Label: "5 min", Seconds: 300}}
}

func (b *PresetBuilder) WithLabel(l string) *PresetBuilder {
	b.preset.Label = l
	return b
}

func (b *PresetBuilder) WithSeconds(s int) *PresetBuilder {
	b.preset.Seconds = s
	return b
}

func (b *PresetBuilder) Build() models.Preset {
	return b.preset
}
