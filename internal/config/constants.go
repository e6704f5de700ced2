package config

import "time"

// Timer behaviour.
const (
	// MaxDigits is the longest digit buffer accepted (HHMMSS).
	MaxDigits = 6
	// TickInterval is the logical length of one countdown step.
	TickInterval = time.Second
	// DefaultBellInterval is how often the terminal bell repeats while ringing.
	DefaultBellInterval = time.Second
	// MaxPresets is the number of preset slots reachable from F1-F9.
	MaxPresets = 9
)

// Alarm modes.
const (
	AlarmModeBell    = "bell"
	AlarmModeCommand = "command"
	AlarmModeNone    = "none"
)

// Application files.
const (
	AppName        = "countdown"
	DBFileName     = "countdown.db"
	LogFileName    = "countdown.log"
	ConfigFileName = "config.yaml"
)

// Settings keys.
const (
	SettingTheme = "theme"
)

// DefaultHistoryLimit is the number of rows shown by `history` without --limit.
const DefaultHistoryLimit = 20
