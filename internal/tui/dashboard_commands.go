package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/timer"
)

// --- Messages ---

// TickMsg carries the handle the tick was armed with so ticks from a
// cancelled handle can be recognised and dropped.
type TickMsg struct {
	Handle timer.TickHandle
	At     time.Time
}

func tickCmd(h timer.TickHandle) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{Handle: h, At: t} })
}
