package clicker

// State is the clicker's on/off flag.
type State int

const (
	Idle State = iota
	Clicking
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Clicking:
		return "clicking"
	default:
		return "unknown"
	}
}

// Toggled returns the opposite state.
func (s State) Toggled() State {
	if s == Clicking {
		return Idle
	}
	return Clicking
}
