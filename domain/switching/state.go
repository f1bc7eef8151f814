package switching

import "gwswitch/domain/gateway"

// Undetermined is displayed when the active gateway could not be resolved.
const Undetermined = "undetermined"

// State describes the orchestrator's current condition. The orchestrator is its
// only writer; everybody else receives copies.
type State struct {
	HealthGateOpen bool
	Candidates     gateway.Store
	// ActiveGateway is empty when undetermined.
	ActiveGateway string
	Phase         Phase
	LastError     error
}

func (s State) ActiveGatewayKnown() bool {
	return s.ActiveGateway != ""
}

// ActiveDisplay is the candidate label matching the active gateway, the raw
// address when no candidate matches, or Undetermined.
func (s State) ActiveDisplay() string {
	if !s.ActiveGatewayKnown() {
		return Undetermined
	}
	if c, ok := s.Candidates.Find(s.ActiveGateway); ok {
		return c.Label
	}
	return s.ActiveGateway
}

func (s State) LastErrorKind() ErrorKind {
	return KindOf(s.LastError)
}
