package config

// Layout constants.
const (
	// MinClockWidth is the narrowest terminal that still gets the large digits.
	MinClockWidth = 40

	// ProgressWidth is the preferred width of the remaining-time bar.
	ProgressWidth = 40

	// MinProgressWidth keeps the bar readable on narrow terminals.
	MinProgressWidth = 10

	// FrameHorizontalPadding is the space reserved around the frame.
	FrameHorizontalPadding = 4
)

// Display limits.
const (
	// MaxPresetLabelWidth truncates preset labels in the preset row.
	MaxPresetLabelWidth = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
