package cli

import (
	"context"
	"errors"
	"fmt"
	"gwswitch/domain/switching"
	"gwswitch/presentation/ui"
	"io"
	"strings"
)

var ErrUnknownGateway = errors.New("no configured gateway matches")

// SwitchPresenter performs one switch to target, an address or a label.
type SwitchPresenter struct {
	out    io.Writer
	target string
}

func NewSwitchPresenter(out io.Writer, target string) *SwitchPresenter {
	return &SwitchPresenter{out: out, target: strings.TrimSpace(target)}
}

func (p *SwitchPresenter) Present(ctx context.Context, controller ui.Controller) error {
	ready, ok := awaitSettledStartup(ctx, controller.Updates())
	if !ok {
		return nil
	}
	if ready.Phase == switching.PhaseDegraded {
		return switching.ErrHealthCheckFailed
	}

	candidates := ready.State.Candidates
	candidate, found := candidates.Find(p.target)
	if !found {
		candidate, found = candidates.FindByLabel(p.target)
	}
	if !found {
		return fmt.Errorf("%w %q", ErrUnknownGateway, p.target)
	}
	if candidate.Address == ready.State.ActiveGateway {
		_, _ = fmt.Fprintf(p.out, "Default gateway is already %s (%s)\n", candidate.Address, candidate.Label)
		return nil
	}
	if !controller.Select(candidate.Address) {
		return fmt.Errorf("switch to %s was not accepted", candidate.Address)
	}

	lastStatus := ""
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u, open := <-controller.Updates():
			if !open {
				return errors.New("switch interrupted")
			}
			if u.Status != "" && u.Status != lastStatus {
				_, _ = fmt.Fprintln(p.out, u.Status)
				lastStatus = u.Status
			}
			switch {
			case u.Phase == switching.PhaseSettled:
				_, _ = fmt.Fprintf(p.out, "Default gateway is now %s (%s)\n", candidate.Address, candidate.Label)
				return nil
			case u.Phase == switching.PhaseAwaitingSelection && u.Err != nil:
				return u.Err
			}
		}
	}
}
