package timer

// EventKind identifies what changed in the engine.
type EventKind int

const (
	EventUpdated EventKind = iota
	EventStarted
	EventResumed
	EventPaused
	EventExpired
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventUpdated:
		return "updated"
	case EventStarted:
		return "started"
	case EventResumed:
		return "resumed"
	case EventPaused:
		return "paused"
	case EventExpired:
		return "expired"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is delivered to observers after every engine transition.
// Previous is the state before the transition, Initial the duration the
// current countdown was started with.
type Event struct {
	Kind      EventKind
	Previous  RunState
	State     RunState
	Remaining int
	Initial   int
}

// Observer receives engine events synchronously on the engine's goroutine.
type Observer func(Event)
