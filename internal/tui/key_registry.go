package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countdown/internal/timer"
)

type KeyHandler func(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool)

// KeyBinding ties a key to a handler. Allowed gates the binding on the
// engine's current control set; nil means always allowed.
type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Allowed  func(timer.Controls) bool
	Priority int
}

func (b KeyBinding) AppliesTo(c timer.Controls) bool {
	if b.Allowed == nil {
		return true
	}
	return b.Allowed(c)
}

// gated returns the binding enabled or disabled for c.
func (b KeyBinding) gated(c timer.Controls) key.Binding {
	kb := b.Binding
	kb.SetEnabled(b.AppliesTo(c))
	return kb
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	controls := m.engine.Controls()
	for _, b := range r.bindings {
		if key.Matches(msg, b.gated(controls)) {
			next, cmd, handled := b.Handler(m, msg)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(c timer.Controls) []key.Binding {
	var out []key.Binding
	for _, b := range r.bindings {
		if kb := b.gated(c); kb.Enabled() {
			out = append(out, kb)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(c timer.Controls) string {
	seen := make(map[string]bool)
	var parts []string
	for _, kb := range r.BindingsFor(c) {
		h := kb.Help()
		if h.Desc == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		parts = append(parts, "["+h.Key+"]"+h.Desc)
	}
	return strings.Join(parts, "|")
}
