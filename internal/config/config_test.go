package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingDefaultFileFallsBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`theme: dracula
log_level: debug
alarm:
  mode: command
  command: [paplay, /tmp/alarm.oga]
presets:
  - label: tea
    seconds: 240
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "dracula", cfg.Theme)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, AlarmModeCommand, cfg.Alarm.Mode)
	require.Equal(t, []string{"paplay", "/tmp/alarm.oga"}, cfg.Alarm.Command)
	require.Equal(t, []Preset{{Label: "tea", Seconds: 240}}, cfg.Presets)
	require.True(t, cfg.History)
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Alarm.Interval = 2 * time.Second

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*Config){
		"theme":    func(c *Config) { c.Theme = "neon" },
		"level":    func(c *Config) { c.LogLevel = "loud" },
		"mode":     func(c *Config) { c.Alarm.Mode = "siren" },
		"command":  func(c *Config) { c.Alarm.Mode = AlarmModeCommand },
		"interval": func(c *Config) { c.Alarm.Interval = 0 },
		"preset":   func(c *Config) { c.Presets = []Preset{{Label: "zero", Seconds: 0}} },
		"too many": func(c *Config) { c.Presets = make([]Preset, MaxPresets+1) },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		require.Error(t, Validate(cfg), name)
	}

	require.Error(t, Validate(nil))
	require.Error(t, Save("", nil))
}

func TestPathsResolve(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg := Default()
	require.Equal(t, filepath.Join("/data", AppName, DBFileName), cfg.DatabasePath())
	require.Equal(t, filepath.Join("/data", AppName, LogFileName), cfg.LogPath())

	cfg.Database = "/tmp/x.db"
	cfg.LogFile = "-"
	require.Equal(t, "/tmp/x.db", cfg.DatabasePath())
	require.Equal(t, "-", cfg.LogPath())
}
