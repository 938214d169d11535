package pipeline

// State is the Driver's position in a run.
type State int

const (
	StateInit State = iota
	StateGenerating
	StateFinalizing
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateGenerating:
		return "generating"
	case StateFinalizing:
		return "finalizing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transitions can happen.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

func allowedTransition(from, to State) bool {
	switch from {
	case StateInit:
		return to == StateGenerating || to == StateFailed
	case StateGenerating:
		return to == StateFinalizing
	case StateFinalizing:
		return to == StateDone || to == StateFailed
	default:
		return false
	}
}
