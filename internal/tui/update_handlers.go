package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/akyairhashvil/countdown/internal/util"
)

var presetKeys = []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9"}

func newDefaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Handler:  handleQuit,
		Priority: 100,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "digits")),
		Handler:  handleDigit,
		Allowed:  func(c timer.Controls) bool { return c.Digits },
		Priority: 50,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Handler:  handleBackspace,
		Allowed:  func(c timer.Controls) bool { return c.Digits },
		Priority: 50,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/pause")),
		Handler:  handleStartPause,
		Allowed:  func(c timer.Controls) bool { return c.StartPause },
		Priority: 40,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("r", "esc"), key.WithHelp("r", "reset")),
		Handler:  handleReset,
		Allowed:  func(c timer.Controls) bool { return c.Reset },
		Priority: 40,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys(presetKeys...), key.WithHelp("F1-F9", "preset")),
		Handler:  handlePreset,
		Allowed:  func(c timer.Controls) bool { return c.Presets },
		Priority: 30,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save preset")),
		Handler:  handleSavePreset,
		Allowed:  func(c timer.Controls) bool { return c.Presets },
		Priority: 20,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Handler:  handleTheme,
		Priority: 10,
	})
	return r
}

func handleQuit(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleDigit(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return m, nil, false
	}
	m.engine.AppendDigit(int(s[0] - '0'))
	return m, nil, true
}

func handleBackspace(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.engine.Backspace()
	return m, nil, true
}

func handleStartPause(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	h, err := m.engine.StartOrPause()
	if errors.Is(err, timer.ErrInvalidDuration) {
		m.setError("Enter a duration of at least 1 second")
		return m, nil, true
	}
	if h.Valid() {
		m.tick = h
		return m, tickCmd(h), true
	}
	return m, nil, true
}

func handleReset(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.engine.Reset()
	return m, nil, true
}

func handlePreset(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	idx := slices.Index(presetKeys, msg.String())
	if idx < 0 || idx >= len(m.presets) {
		return m, nil, true
	}
	m.engine.SetPreset(m.presets[idx].Seconds)
	return m, nil, true
}

func handleSavePreset(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	seconds := m.engine.Remaining()
	switch {
	case m.store == nil:
		m.setError("Presets cannot be saved without a database")
		return m, nil, true
	case seconds <= 0:
		m.setError("Enter a duration to save as a preset")
		return m, nil, true
	case len(m.presets) >= config.MaxPresets:
		m.setError(fmt.Sprintf("All %d preset slots are taken", config.MaxPresets))
		return m, nil, true
	}

	label := timer.Format(seconds)
	id, err := m.store.AddPreset(m.ctx, label, seconds)
	if err != nil {
		util.LogError(m.ctx, "save preset", err)
		m.setError("Could not save preset")
		return m, nil, true
	}
	presets, err := m.store.ListPresets(m.ctx)
	if err != nil {
		util.LogError(m.ctx, "reload presets", err)
		presets = append(slices.Clone(m.presets), models.Preset{ID: id, Label: label, Seconds: seconds})
	}
	m.presets = presets
	slot := min(len(m.presets), config.MaxPresets) - 1
	m.setStatus(fmt.Sprintf("Saved %s as %s", label, strings.ToUpper(presetKeys[slot])))
	return m, nil, true
}

func handleTheme(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	idx := slices.Index(config.KnownThemes, m.themeName)
	next := config.KnownThemes[(idx+1)%len(config.KnownThemes)]
	m.applyTheme(next)
	if m.store != nil {
		util.LogError(m.ctx, "persist theme", m.store.SetSetting(m.ctx, config.SettingTheme, next))
	}
	return m, nil, true
}
