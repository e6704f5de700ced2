package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/countdown/internal/util"
)

// Config holds user settings for the timer and its surroundings.
type Config struct {
	// Theme selects the TUI color theme.
	Theme string `yaml:"theme"`
	// LogLevel is the minimum zap level written to the log file.
	LogLevel string `yaml:"log_level"`
	// LogFile is where logs go; empty means the data dir, "-" means stderr.
	LogFile string `yaml:"log_file,omitempty"`
	// Database is the sqlite file holding presets and history.
	Database string `yaml:"database,omitempty"`
	// History enables recording of finished countdowns.
	History bool `yaml:"history"`
	// Alarm configures the device played on expiry.
	Alarm Alarm `yaml:"alarm"`
	// Presets are seeded into an empty database on first start.
	Presets []Preset `yaml:"presets"`
}

// Alarm selects and configures the alarm device.
type Alarm struct {
	Mode     string        `yaml:"mode"`
	Command  []string      `yaml:"command,omitempty"`
	Interval time.Duration `yaml:"interval"`
}

// Preset is a named fixed duration.
type Preset struct {
	Label   string `yaml:"label"`
	Seconds int    `yaml:"seconds"`
}

// DefaultFilePermissions is used when writing the config file.
const DefaultFilePermissions = 0o600

// KnownThemes lists the theme names the TUI can render.
var KnownThemes = []string{"default", "dracula"}

var (
	errConfigIsNotSet  = errors.New("configuration is not set")
	errUnknownTheme    = errors.New("unknown theme")
	errUnknownLogLevel = errors.New("unknown log level")
	errUnknownAlarm    = errors.New("unknown alarm mode")
	errEmptyCommand    = errors.New("alarm command must be provided for mode \"command\"")
	errBellInterval    = errors.New("alarm interval must be positive")
	errTooManyPresets  = fmt.Errorf("at most %d presets are supported", MaxPresets)
	errInvalidPreset   = errors.New("invalid preset")
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:    "default",
		LogLevel: "info",
		History:  true,
		Alarm: Alarm{
			Mode:     AlarmModeBell,
			Interval: DefaultBellInterval,
		},
		Presets: []Preset{
			{Label: "1 min", Seconds: 60},
			{Label: "3 min", Seconds: 180},
			{Label: "5 min", Seconds: 300},
			{Label: "10 min", Seconds: 600},
			{Label: "30 min", Seconds: 1800},
			{Label: "1 hour", Seconds: 3600},
		},
	}
}

// DefaultPath is the config file location under the user's config dir.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load reads configuration from path. An empty path means DefaultPath, and a
// missing default file yields Default(). An explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path, creating its directory.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultPath()
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks cfg for unknown names and impossible values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if !slices.Contains(KnownThemes, cfg.Theme) {
		return fmt.Errorf("%w: %q", errUnknownTheme, cfg.Theme)
	}

	if _, ok := util.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	switch cfg.Alarm.Mode {
	case AlarmModeBell:
		if cfg.Alarm.Interval <= 0 {
			return errBellInterval
		}
	case AlarmModeCommand:
		if len(cfg.Alarm.Command) == 0 || strings.TrimSpace(cfg.Alarm.Command[0]) == "" {
			return errEmptyCommand
		}
	case AlarmModeNone:
	default:
		return fmt.Errorf("%w: %q", errUnknownAlarm, cfg.Alarm.Mode)
	}

	if len(cfg.Presets) > MaxPresets {
		return errTooManyPresets
	}

	for i, p := range cfg.Presets {
		if strings.TrimSpace(p.Label) == "" || p.Seconds <= 0 {
			return fmt.Errorf("%w #%d: label must be set and seconds positive", errInvalidPreset, i+1)
		}
	}

	return nil
}

// DatabasePath resolves the sqlite file location.
func (c *Config) DatabasePath() string {
	if c.Database != "" {
		return c.Database
	}
	return filepath.Join(util.DataDir(AppName), DBFileName)
}

// LogPath resolves the log file location. "-" is returned unchanged.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(util.DataDir(AppName), LogFileName)
}
