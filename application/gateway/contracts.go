package gateway

import (
	"context"
	"gwswitch/domain/gateway"
)

// CandidateSource loads the candidate list. Load returns
// *switching.ConfigAbsentError when there is nothing to read and
// *switching.ConfigUnreadableError on I/O failure; malformed lines are not errors.
type CandidateSource interface {
	Load(ctx context.Context) (gateway.Store, error)
}

// Provisioner writes the default candidate list so the operator can edit it.
type Provisioner interface {
	Provision(lines []string) (path string, err error)
}

// Prober resolves the active default gateway. Every failure, including a
// failed command, reports ok == false.
type Prober interface {
	Probe(ctx context.Context) (address string, ok bool)
}

// Executor replaces the default route. A non-nil error is a *switching.ExecutionError.
type Executor interface {
	Apply(ctx context.Context, address string) error
}

// HealthGate reports whether any of the named services is running.
// It fails closed.
type HealthGate interface {
	IsSwitchingPermitted(ctx context.Context, serviceNames []string) bool
}
