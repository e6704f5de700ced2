package timer

import (
	"errors"

	"go.uber.org/zap"
)

// ErrInvalidDuration is returned by Start when there is no time to count down.
var ErrInvalidDuration = errors.New("duration must be at least 1 second")

// TickHandle identifies one armed repeating tick. Only the most recently
// armed handle is live; ticks carrying any other handle are ignored.
type TickHandle struct {
	gen uint64
}

// Valid reports whether h was ever armed. It says nothing about liveness.
func (h TickHandle) Valid() bool { return h.gen != 0 }

// TickResult reports what a tick did.
type TickResult int

const (
	TickStale TickResult = iota
	TickContinue
	TickExpired
)

// Engine is the countdown state machine. It is not safe for concurrent use;
// one event loop owns it and feeds it input, ticks and dismissals.
type Engine struct {
	state     RunState
	remaining int
	initial   int
	input     Input

	gen  uint64
	live bool

	alarm     *AlarmController
	observers []Observer
	log       *zap.SugaredLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for transitions and device failures.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver registers fn to receive every Event.
func WithObserver(fn Observer) Option {
	return func(e *Engine) {
		if fn != nil {
			e.observers = append(e.observers, fn)
		}
	}
}

// NewEngine builds an idle engine whose alarm controller drives device.
func NewEngine(device Alarm, opts ...Option) *Engine {
	e := &Engine{log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(e)
	}
	e.alarm = newAlarmController(device, e, e.log)
	return e
}

// Observe adds an observer after construction.
func (e *Engine) Observe(fn Observer) {
	if fn != nil {
		e.observers = append(e.observers, fn)
	}
}

func (e *Engine) State() RunState    { return e.state }
func (e *Engine) Remaining() int     { return e.remaining }
func (e *Engine) Digits() string     { return e.input.Digits() }
func (e *Engine) Initial() int       { return e.initial }
func (e *Engine) Display() string    { return Format(e.remaining) }
func (e *Engine) Controls() Controls { return ControlsFor(e.state) }

// Alarm exposes the controller so the presentation layer can forward
// dismissal interactions.
func (e *Engine) Alarm() *AlarmController { return e.alarm }

// AppendDigit adds d to the buffer while idle. Calls in any other state,
// out-of-range digits and a full buffer are ignored.
func (e *Engine) AppendDigit(d int) bool {
	if e.state != Idle || !e.input.Append(d) {
		return false
	}
	e.remaining = e.input.Seconds()
	e.emit(EventUpdated, Idle)
	return true
}

// Backspace removes the last typed digit while idle.
func (e *Engine) Backspace() bool {
	if e.state != Idle || !e.input.Backspace() {
		return false
	}
	e.remaining = e.input.Seconds()
	e.emit(EventUpdated, Idle)
	return true
}

// SetPreset replaces the pending duration while idle.
func (e *Engine) SetPreset(seconds int) bool {
	if e.state != Idle || seconds < 0 {
		return false
	}
	e.input.Preset(seconds)
	e.remaining = seconds
	e.emit(EventUpdated, Idle)
	return true
}

// Start begins or resumes the countdown and returns the handle ticks must
// carry. Starting from idle with no duration fails with ErrInvalidDuration.
// Calls from Running or Expired are no-ops returning a zero handle.
func (e *Engine) Start() (TickHandle, error) {
	prev := e.state
	switch prev {
	case Idle, Paused:
	default:
		return TickHandle{}, nil
	}
	if e.remaining <= 0 {
		return TickHandle{}, ErrInvalidDuration
	}

	h := e.arm()
	e.state = Running
	kind := EventResumed
	if prev == Idle {
		e.initial = e.remaining
		e.input.Clear()
		kind = EventStarted
	}
	e.log.Debugw("countdown running", "from", prev, "remaining", e.remaining)
	e.emit(kind, prev)
	return h, nil
}

// Pause stops a running countdown, keeping the remaining time.
func (e *Engine) Pause() bool {
	if e.state != Running {
		return false
	}
	e.disarm()
	e.state = Paused
	e.log.Debugw("countdown paused", "remaining", e.remaining)
	e.emit(EventPaused, Running)
	return true
}

// StartOrPause toggles between running and paused. An expired timer is left
// alone until its alarm is dismissed.
func (e *Engine) StartOrPause() (TickHandle, error) {
	if e.state == Running {
		e.Pause()
		return TickHandle{}, nil
	}
	return e.Start()
}

// Reset returns to idle from any state and silences the alarm.
func (e *Engine) Reset() {
	prev := e.state
	e.disarm()
	e.remaining = 0
	e.input.Clear()
	e.state = Idle
	e.alarm.Silence()
	e.log.Debugw("countdown reset", "from", prev)
	e.emit(EventReset, prev)
	e.initial = 0
}

// Tick applies one 1-second decrement if h is the live handle.
func (e *Engine) Tick(h TickHandle) TickResult {
	if !e.live || h.gen != e.gen || e.state != Running {
		return TickStale
	}
	e.remaining--
	if e.remaining > 0 {
		e.emit(EventUpdated, Running)
		return TickContinue
	}

	e.disarm()
	e.remaining = 0
	e.state = Expired
	e.input.Clear()
	e.log.Debugw("countdown expired", "initial", e.initial)
	e.alarm.Expired()
	e.emit(EventExpired, Running)
	return TickExpired
}

// arm invalidates any previous handle before issuing a new one.
func (e *Engine) arm() TickHandle {
	e.disarm()
	e.gen++
	e.live = true
	return TickHandle{gen: e.gen}
}

func (e *Engine) disarm() {
	if e.live {
		e.gen++
		e.live = false
	}
}

func (e *Engine) emit(kind EventKind, prev RunState) {
	ev := Event{
		Kind:      kind,
		Previous:  prev,
		State:     e.state,
		Remaining: e.remaining,
		Initial:   e.initial,
	}
	for _, fn := range e.observers {
		fn(ev)
	}
}
