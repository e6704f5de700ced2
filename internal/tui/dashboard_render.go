package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/timer"
)

func (m Model) View() string {
	state := m.engine.State()
	controls := m.engine.Controls()

	sections := []string{
		m.renderHeader(state, controls),
		"",
		m.renderClock(state),
	}
	if bar := m.renderProgress(state); bar != "" {
		sections = append(sections, "", bar)
	}
	sections = append(sections, "", m.renderInput(state), m.renderPresets(controls))
	if line := m.renderNotice(); line != "" {
		sections = append(sections, "", line)
	}

	body := m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
	footer := m.theme.Dim.Render(truncate(m.registry.HelpFor(controls), m.width))
	view := lipgloss.JoinVertical(lipgloss.Center, body, footer)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m Model) renderHeader(state timer.RunState, controls timer.Controls) string {
	label := strings.ToUpper(state.String())
	if controls.StartPause {
		label += " · space: " + controls.StartLabel
	}
	return m.theme.Header.Render(fmt.Sprintf("%s %s  %s", strings.ToUpper(config.AppName), versionLabel(), label))
}

func (m Model) renderClock(state timer.RunState) string {
	digits := m.theme.Clock
	switch state {
	case timer.Paused:
		digits = m.theme.ClockPaused
	case timer.Expired:
		digits = m.theme.ClockExpired
	}

	display := m.engine.Display()
	if m.width == 0 || (m.width >= config.MinClockWidth && bigClockWidth(display)+2*config.FrameHorizontalPadding+8 <= m.width) {
		return bigClock(display, digits, m.theme.Colon)
	}
	return styleColons(display, digits, m.theme.Colon)
}

func (m Model) renderProgress(state timer.RunState) string {
	initial := m.engine.Initial()
	if initial <= 0 || (state != timer.Running && state != timer.Paused) {
		return ""
	}
	return m.progress.ViewAs(float64(m.engine.Remaining()) / float64(initial))
}

func (m Model) renderInput(state timer.RunState) string {
	if state != timer.Idle {
		return m.theme.Dim.Render("input locked")
	}
	digits := m.engine.Digits()
	if digits == "" {
		return m.theme.Dim.Render("type digits (HHMMSS) or pick a preset")
	}
	return m.theme.Input.Render("input " + digits)
}

func (m Model) renderPresets(controls timer.Controls) string {
	if len(m.presets) == 0 {
		return ""
	}
	keyStyle, labelStyle := m.theme.PresetKey, m.theme.Preset
	if !controls.Presets {
		keyStyle, labelStyle = m.theme.Dim, m.theme.Dim
	}
	var parts []string
	for i, p := range m.presets {
		if i >= len(presetKeys) {
			break
		}
		label := truncate(p.Label, config.MaxPresetLabelWidth)
		parts = append(parts, keyStyle.Render(strings.ToUpper(presetKeys[i]))+" "+labelStyle.Render(label))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderNotice() string {
	switch {
	case m.engine.Alarm().Armed():
		return m.theme.Hint.Render("Time's up! Press any key or click to stop the alarm")
	case m.status != "" && m.statusErr:
		return m.theme.Error.Render(m.status)
	case m.status != "":
		return m.theme.Status.Render(m.status)
	}
	return ""
}
