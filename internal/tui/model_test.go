package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/timer"
)

type fakeAlarm struct {
	plays, stops, rewinds int
}

func (f *fakeAlarm) Play() error   { f.plays++; return nil }
func (f *fakeAlarm) Stop() error   { f.stops++; return nil }
func (f *fakeAlarm) Rewind() error { f.rewinds++; return nil }

func setupModelDB(t *testing.T) *database.Database {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "model.db")
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func newTestModel(t *testing.T, opts Options) (Model, *fakeAlarm) {
	t.Helper()
	device := &fakeAlarm{}
	opts.Device = device
	if opts.Presets == nil {
		opts.Presets = []models.Preset{{Label: "1 min", Seconds: 60}, {Label: "3 sec", Seconds: 3}}
	}
	return NewModel(context.Background(), opts), device
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeDigits(t *testing.T, m Model, digits string) Model {
	t.Helper()
	for _, r := range digits {
		m, _ = press(t, m, runes(string(r)))
	}
	return m
}

func TestDigitsUpdateDisplay(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = typeDigits(t, m, "130")
	if got := m.engine.Display(); got != "01:30" {
		t.Fatalf("display = %q, want 01:30", got)
	}
	if !strings.Contains(m.View(), "input 130") {
		t.Fatalf("expected input line in view")
	}
}

func TestStartWithoutDurationShowsError(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd != nil {
		t.Fatalf("expected no tick command")
	}
	if !m.statusErr || m.status == "" {
		t.Fatalf("expected error status")
	}
	if m.engine.State() != timer.Idle {
		t.Fatalf("expected idle, got %v", m.engine.State())
	}
	m, _ = press(t, m, runes("5"))
	if m.status != "" {
		t.Fatalf("expected status cleared by next key")
	}
}

func TestCountdownExpiresAndKeyDismisses(t *testing.T) {
	m, device := newTestModel(t, Options{})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF2})
	if m.engine.Remaining() != 3 {
		t.Fatalf("expected preset 3s, got %d", m.engine.Remaining())
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected tick command on start")
	}
	h := firstHandle(t, m)

	for i := 0; i < 3; i++ {
		m, _ = m.handleTick(TickMsg{Handle: h})
	}
	if m.engine.State() != timer.Expired {
		t.Fatalf("expected expired, got %v", m.engine.State())
	}
	if device.plays != 1 {
		t.Fatalf("expected one play, got %d", device.plays)
	}
	if !strings.Contains(m.View(), "Time's up") {
		t.Fatalf("expected stop hint in view")
	}

	// Digits are swallowed by the dismissal, not appended.
	m, _ = press(t, m, runes("7"))
	if m.engine.State() != timer.Idle || m.engine.Digits() != "" || m.engine.Remaining() != 0 {
		t.Fatalf("expected full reset after dismissal")
	}
	if device.stops != 1 || device.rewinds != 1 {
		t.Fatalf("expected stop and rewind once, got %d/%d", device.stops, device.rewinds)
	}
}

func TestMouseClickDismissesAlarm(t *testing.T) {
	m, device := newTestModel(t, Options{})
	m = typeDigits(t, m, "1")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.handleTick(TickMsg{Handle: firstHandle(t, m)})
	if !m.engine.Alarm().Armed() {
		t.Fatalf("expected armed dismissal listener")
	}

	m, _ = press(t, m, tea.MouseMsg{Action: tea.MouseActionMotion})
	if !m.engine.Alarm().Armed() {
		t.Fatalf("motion should not dismiss")
	}
	m, _ = press(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.engine.State() != timer.Idle || device.stops != 1 {
		t.Fatalf("expected click to dismiss alarm")
	}
}

func TestControlsGateKeysWhileRunning(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = typeDigits(t, m, "10")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = typeDigits(t, m, "5")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	m, _ = press(t, m, runes("r"))
	if m.engine.State() != timer.Running || m.engine.Remaining() != 10 {
		t.Fatalf("running timer should ignore digits, presets and reset")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.engine.State() != timer.Paused {
		t.Fatalf("expected paused")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.engine.State() != timer.Idle || m.engine.Remaining() != 0 {
		t.Fatalf("expected reset from paused")
	}
}

func TestStaleTickAfterPauseIsDropped(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = typeDigits(t, m, "30")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	stale := firstHandle(t, m)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := m.handleTick(TickMsg{Handle: stale})
	if cmd != nil {
		t.Fatalf("stale tick must not reschedule")
	}
	if m.engine.Remaining() != 30 {
		t.Fatalf("stale tick decremented: %d", m.engine.Remaining())
	}
}

func TestBackspaceKeepsPreset(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = typeDigits(t, m, "12")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.engine.Digits() != "1" || m.engine.Remaining() != 1 {
		t.Fatalf("unexpected state after backspace: %q %d", m.engine.Digits(), m.engine.Remaining())
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.engine.Remaining() != 60 {
		t.Fatalf("backspace should keep preset value, got %d", m.engine.Remaining())
	}
}

func TestSavePresetAndThemePersist(t *testing.T) {
	db := setupModelDB(t)
	ctx := context.Background()
	m, _ := newTestModel(t, Options{Store: db, Presets: []models.Preset{}, History: true})

	m, _ = press(t, m, runes("s"))
	if !m.statusErr {
		t.Fatalf("expected error saving empty duration")
	}

	m = typeDigits(t, m, "45")
	m, _ = press(t, m, runes("s"))
	if m.statusErr || len(m.presets) != 1 || m.presets[0].Seconds != 45 {
		t.Fatalf("expected saved preset, got %+v (%s)", m.presets, m.status)
	}

	m, _ = press(t, m, runes("t"))
	if m.themeName != "dracula" {
		t.Fatalf("expected theme to cycle, got %s", m.themeName)
	}
	if v, ok := db.GetSetting(ctx, "theme"); !ok || v != "dracula" {
		t.Fatalf("theme not persisted: %q", v)
	}

	reopened := NewModel(ctx, Options{Store: db, Device: &fakeAlarm{}})
	if reopened.themeName != "dracula" {
		t.Fatalf("expected persisted theme on restart, got %s", reopened.themeName)
	}
}

func TestHistoryRecordedThroughModel(t *testing.T) {
	db := setupModelDB(t)
	m, _ := newTestModel(t, Options{Store: db, History: true})
	m = typeDigits(t, m, "2")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	h := firstHandle(t, m)
	m, _ = m.handleTick(TickMsg{Handle: h})
	m, _ = m.handleTick(TickMsg{Handle: h})

	rows, err := db.ListCountdowns(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListCountdowns failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Outcome != models.OutcomeExpired || rows[0].Seconds != 2 {
		t.Fatalf("unexpected history: %+v", rows)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func firstHandle(t *testing.T, m Model) timer.TickHandle {
	t.Helper()
	if !m.tick.Valid() {
		t.Fatalf("expected an armed tick handle")
	}
	return m.tick
}
