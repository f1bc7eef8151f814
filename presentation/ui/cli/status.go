package cli

import (
	"context"
	"fmt"
	"gwswitch/domain/switching"
	"gwswitch/presentation/ui"
	"io"
)

// StatusPresenter prints the health gate, the active gateway and the
// candidates once the orchestrator has settled into its first ready state.
type StatusPresenter struct {
	out io.Writer
}

func NewStatusPresenter(out io.Writer) *StatusPresenter {
	return &StatusPresenter{out: out}
}

func (p *StatusPresenter) Present(ctx context.Context, controller ui.Controller) error {
	u, ok := awaitSettledStartup(ctx, controller.Updates())
	if !ok {
		return nil
	}
	p.print(u.State)
	return nil
}

func (p *StatusPresenter) print(state switching.State) {
	gate := "open"
	if !state.HealthGateOpen {
		gate = "closed"
	}
	_, _ = fmt.Fprintf(p.out, "Health gate:     %s\n", gate)
	_, _ = fmt.Fprintf(p.out, "Current gateway: %s", state.ActiveDisplay())
	if state.ActiveGatewayKnown() && state.ActiveDisplay() != state.ActiveGateway {
		_, _ = fmt.Fprintf(p.out, " (%s)", state.ActiveGateway)
	}
	_, _ = fmt.Fprintln(p.out)
	if state.Phase == switching.PhaseDegraded {
		return
	}
	_, _ = fmt.Fprintf(p.out, "Gateways (%d):\n", state.Candidates.Len())
	for _, c := range state.Candidates.Candidates {
		marker := " "
		if c.Address == state.ActiveGateway {
			marker = "*"
		}
		_, _ = fmt.Fprintf(p.out, "  %s %s\n", marker, c.DisplayName)
	}
	if state.Candidates.Skipped > 0 {
		_, _ = fmt.Fprintf(p.out, "  (%d line(s) skipped)\n", state.Candidates.Skipped)
	}
	if state.LastError != nil {
		_, _ = fmt.Fprintf(p.out, "Warning: %v\n", state.LastError)
	}
}

// awaitSettledStartup drains updates until the startup sequence ends.
// ok is false when the stream closed without a ready or degraded state.
func awaitSettledStartup(ctx context.Context, updates <-chan switching.Update) (switching.Update, bool) {
	for {
		select {
		case <-ctx.Done():
			return switching.Update{}, false
		case u, open := <-updates:
			if !open {
				return switching.Update{}, false
			}
			switch u.Phase {
			case switching.PhaseAwaitingSelection, switching.PhaseDegraded:
				return u, true
			}
		}
	}
}
