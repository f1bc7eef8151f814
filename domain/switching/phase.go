package switching

// Phase is the orchestrator's lifecycle state.
type Phase uint8

const (
	PhaseInitializing Phase = iota
	PhaseAwaitingSelection
	PhaseSwitching
	PhaseSettled
	PhaseDegraded
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseAwaitingSelection:
		return "awaiting selection"
	case PhaseSwitching:
		return "switching"
	case PhaseSettled:
		return "settled"
	case PhaseDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// AcceptsSelection reports whether a selection event may start a switch.
func (p Phase) AcceptsSelection() bool {
	return p == PhaseAwaitingSelection || p == PhaseSettled
}
