package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/history"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/akyairhashvil/countdown/internal/util"
)

// Options wires the model to its collaborators. Store may be nil, in which
// case presets come only from Presets and nothing is persisted.
type Options struct {
	Store   database.Repository
	Device  timer.Alarm
	Presets []models.Preset
	Theme   string
	History bool
}

// Model is the root bubbletea model driving one countdown engine.
type Model struct {
	ctx      context.Context
	engine   *timer.Engine
	store    database.Repository
	presets  []models.Preset
	registry *HandlerRegistry
	progress progress.Model
	tick     timer.TickHandle

	theme     Theme
	themeName string

	status    string
	statusErr bool

	width  int
	height int
}

func NewModel(ctx context.Context, opts Options) Model {
	log := util.FromContext(ctx)

	engineOpts := []timer.Option{timer.WithLogger(log.Named("engine"))}
	if opts.History && opts.Store != nil {
		rec := history.NewRecorder(ctx, opts.Store, nil)
		engineOpts = append(engineOpts, timer.WithObserver(rec.Observe))
	}
	engineOpts = append(engineOpts, timer.WithObserver(func(ev timer.Event) {
		if ev.Kind != timer.EventUpdated {
			log.Infow("timer event", "event", ev.Kind, "state", ev.State, "remaining", ev.Remaining)
		}
	}))

	m := Model{
		ctx:      ctx,
		engine:   timer.NewEngine(opts.Device, engineOpts...),
		store:    opts.Store,
		presets:  opts.Presets,
		registry: newDefaultRegistry(),
	}

	themeName := opts.Theme
	if m.store != nil {
		if saved, ok := m.store.GetSetting(ctx, config.SettingTheme); ok {
			themeName = saved
		}
	}
	m.applyTheme(themeName)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(config.AppName)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = util.Clamp(msg.Width-2*config.FrameHorizontalPadding-8, config.MinProgressWidth, config.ProgressWidth)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.engine.Alarm().Interact(timer.InteractionPointer)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// A ringing alarm swallows the key that dismisses it.
		if m.engine.Alarm().Interact(timer.InteractionKey) {
			m.clearStatus()
			return m, nil
		}
		m.clearStatus()
		next, cmd, _ := m.registry.Handle(m, msg)
		return next, cmd
	}

	return m, nil
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	switch m.engine.Tick(msg.Handle) {
	case timer.TickContinue:
		return m, tickCmd(msg.Handle)
	case timer.TickExpired:
		m.clearStatus()
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) applyTheme(name string) {
	m.theme = ThemeByName(name)
	if _, ok := Themes[name]; ok {
		m.themeName = name
	} else {
		m.themeName = "default"
	}
	width := m.progress.Width
	if width == 0 {
		width = config.ProgressWidth
	}
	m.progress = progress.New(
		progress.WithGradient(m.theme.Gradient[0], m.theme.Gradient[1]),
		progress.WithoutPercentage(),
	)
	m.progress.Width = width
}

func (m *Model) setError(text string) {
	m.status = text
	m.statusErr = true
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

var _ tea.Model = Model{}
