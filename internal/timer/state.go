package timer

// RunState is the engine's lifecycle state.
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
	Expired
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Controls is the set of affordances the presentation layer may offer in a
// given state.
type Controls struct {
	Digits     bool
	Presets    bool
	Reset      bool
	StartPause bool
	StartLabel string
}

// ControlsFor returns the capability set for state s. While running only
// the pause control is live; an expired timer waits for dismissal.
func ControlsFor(s RunState) Controls {
	switch s {
	case Running:
		return Controls{StartPause: true, StartLabel: "Pause"}
	case Paused:
		return Controls{Reset: true, StartPause: true, StartLabel: "Resume"}
	case Expired:
		return Controls{StartLabel: "Start"}
	default:
		return Controls{Digits: true, Presets: true, Reset: true, StartPause: true, StartLabel: "Start"}
	}
}
