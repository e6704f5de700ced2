package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name         string
	Base         lipgloss.Style
	Border       lipgloss.Color
	Header       lipgloss.Style
	Clock        lipgloss.Style
	ClockPaused  lipgloss.Style
	ClockExpired lipgloss.Style
	Colon        lipgloss.Style
	Input        lipgloss.Style
	Preset       lipgloss.Style
	PresetKey    lipgloss.Style
	Hint         lipgloss.Style
	Error        lipgloss.Style
	Status       lipgloss.Style
	Dim          lipgloss.Style
	Gradient     [2]string
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Base:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 3),
		Border:       lipgloss.Color("63"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Clock:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		ClockPaused:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		ClockExpired: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Blink(true),
		Colon:        lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Input:        lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Preset:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PresetKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Gradient:     [2]string{"#5A56E0", "#EE6FF8"},
	},
	"dracula": {
		Name:         "Dracula",
		Base:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 3),
		Border:       lipgloss.Color("62"),                                            // Purple
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Clock:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		ClockPaused:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		ClockExpired: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Blink(true),
		Colon:        lipgloss.NewStyle().Foreground(lipgloss.Color("141")), // Purple
		Input:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Preset:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		PresetKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true), // Yellow
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")), // Green
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Gradient:     [2]string{"#BD93F9", "#FF79C6"},
	},
}

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
