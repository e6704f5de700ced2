package database

import (
	"context"

	"github.com/akyairhashvil/countdown/internal/models"
)

// PresetRepository defines preset storage.
type PresetRepository interface {
	ListPresets(ctx context.Context) ([]models.Preset, error)
	AddPreset(ctx context.Context, label string, seconds int) (int64, error)
	DeletePreset(ctx context.Context, id int64) error
	SeedPresets(ctx context.Context, presets []models.Preset) error
}

// HistoryRepository defines countdown history storage.
type HistoryRepository interface {
	RecordCountdown(ctx context.Context, c models.Countdown) (int64, error)
	ListCountdowns(ctx context.Context, limit int) ([]models.Countdown, error)
}

// SettingsRepository defines key/value settings storage.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	PresetRepository
	HistoryRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
