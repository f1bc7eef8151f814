package switching

import (
	"context"
	"errors"
	"fmt"
	appGateway "gwswitch/application/gateway"
	"gwswitch/application/logging"
	"gwswitch/domain/gateway"
	"gwswitch/domain/switching"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const defaultUpdateBuffer = 64

type Dependencies struct {
	Gate     appGateway.HealthGate
	Services []string
	Source   appGateway.CandidateSource
	// Provisioner may be nil; a missing candidate file is then only reported.
	Provisioner appGateway.Provisioner
	Prober      appGateway.Prober
	Executor    appGateway.Executor
	Logger      logging.Logger
}

type Options struct {
	Pacer        Pacer
	UpdateBuffer int
}

// Orchestrator owns the switch state. Run is the only writer of that state;
// Select, Refresh and Reload only enqueue requests for it.
type Orchestrator struct {
	deps    Dependencies
	pacer   Pacer
	state   switching.State
	current atomic.Pointer[switching.State]
	updates chan switching.Update

	mu         sync.Mutex
	pending    string
	selections chan struct{}
	refreshes  chan struct{}
	reloads    chan struct{}
}

func NewOrchestrator(deps Dependencies, opts Options) *Orchestrator {
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	buffer := opts.UpdateBuffer
	if buffer <= 0 {
		buffer = defaultUpdateBuffer
	}
	o := &Orchestrator{
		deps:       deps,
		pacer:      opts.Pacer,
		state:      switching.State{Phase: switching.PhaseInitializing},
		updates:    make(chan switching.Update, buffer),
		selections: make(chan struct{}, 1),
		refreshes:  make(chan struct{}, 1),
		reloads:    make(chan struct{}, 1),
	}
	initial := o.state
	o.current.Store(&initial)
	return o
}

// Updates is closed when Run returns.
func (o *Orchestrator) Updates() <-chan switching.Update {
	return o.updates
}

// Snapshot returns the most recently published state.
func (o *Orchestrator) Snapshot() switching.State {
	return *o.current.Load()
}

// Select requests a switch to address. It returns false, and does nothing,
// when the orchestrator is not ready for a selection (including while a switch
// is in flight) or when address is not a configured candidate. Selections made
// before the previous one was picked up are coalesced to the latest.
//
// true only means the request was queued. The check runs against the last
// published state, so a second call racing the first can also return true and
// then be dropped once the first switch starts; watch Updates for the outcome.
func (o *Orchestrator) Select(address string) bool {
	snapshot := o.Snapshot()
	if !snapshot.Phase.AcceptsSelection() {
		o.deps.Logger.Printf("selection of %s ignored while %s", address, snapshot.Phase)
		return false
	}
	if _, ok := snapshot.Candidates.Find(address); !ok {
		o.deps.Logger.Printf("selection of %s ignored: not a configured gateway", address)
		return false
	}
	o.mu.Lock()
	o.pending = address
	o.mu.Unlock()
	signal(o.selections)
	return true
}

// Refresh requests a new probe of the active gateway.
func (o *Orchestrator) Refresh() {
	signal(o.refreshes)
}

// Reload requests a wholesale reload of the candidate list.
func (o *Orchestrator) Reload() {
	signal(o.reloads)
}

// Run executes the startup sequence and then serves requests until ctx is done.
// It returns ErrHealthCheckFailed after entering the degraded phase, and an error
// matching switching.ErrRestartRequired after a default configuration was written.
// Without a Provisioner a missing configuration leaves an empty, ready list.
func (o *Orchestrator) Run(ctx context.Context) error {
	defer close(o.updates)

	o.publish(ctx, switching.Update{Status: "Checking required services"})
	if !o.deps.Gate.IsSwitchingPermitted(ctx, o.deps.Services) {
		if ctx.Err() != nil {
			return nil
		}
		o.state.Phase = switching.PhaseDegraded
		o.state.LastError = switching.ErrHealthCheckFailed
		o.deps.Logger.Printf("none of the required services %v is running, switching disabled", o.deps.Services)
		o.publish(ctx, switching.Update{Status: "Switching disabled", Err: switching.ErrHealthCheckFailed})
		return switching.ErrHealthCheckFailed
	}
	o.state.HealthGateOpen = true

	o.publish(ctx, switching.Update{Status: "Loading gateways"})
	if err := o.initialize(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-o.selections:
			if address, ok := o.takePending(); ok {
				o.switchTo(ctx, address)
			}
		case <-o.refreshes:
			o.refresh(ctx)
		case <-o.reloads:
			o.reload(ctx)
		}
	}
}

func (o *Orchestrator) initialize(ctx context.Context) error {
	var (
		store    gateway.Store
		loadErr  error
		active   string
		activeOK bool
		startup  errgroup.Group
	)
	startup.Go(func() error {
		store, loadErr = o.deps.Source.Load(ctx)
		return nil
	})
	startup.Go(func() error {
		active, activeOK = o.deps.Prober.Probe(ctx)
		return nil
	})
	_ = startup.Wait()

	var absent *switching.ConfigAbsentError
	switch {
	case errors.As(loadErr, &absent) && o.deps.Provisioner != nil:
		return o.provisionDefaults(ctx, absent)
	case loadErr != nil:
		o.deps.Logger.Printf("failed to load gateways: %v", loadErr)
		o.state.LastError = loadErr
	default:
		if store.Skipped > 0 {
			o.deps.Logger.Printf("skipped %d unrecognised line(s) in gateway configuration", store.Skipped)
		}
		o.state.Candidates = store
	}

	if activeOK {
		o.state.ActiveGateway = active
	} else if o.state.LastError == nil {
		o.state.LastError = switching.ErrProbeIndeterminate
	}

	o.state.Phase = switching.PhaseAwaitingSelection
	status := "Ready"
	switch {
	case absent != nil:
		status = fmt.Sprintf("No gateway configuration at %s", absent.Path)
	case loadErr != nil:
		status = "Failed to read gateway configuration"
	case o.state.Candidates.Len() == 0:
		status = "No gateways configured"
	}
	o.publish(ctx, switching.Update{Status: status, Err: loadErr})
	return nil
}

func (o *Orchestrator) provisionDefaults(ctx context.Context, absent *switching.ConfigAbsentError) error {
	path, err := o.deps.Provisioner.Provision(gateway.DefaultLines())
	if err != nil {
		o.deps.Logger.Printf("failed to write default gateway configuration: %v", err)
		o.state.LastError = err
		o.publish(ctx, switching.Update{Status: "Failed to create gateway configuration", Err: err})
		return fmt.Errorf("create default gateway configuration: %w", err)
	}
	o.deps.Logger.Printf("wrote default gateway configuration to %s", path)
	o.state.LastError = absent
	o.publish(ctx, switching.Update{
		Status: fmt.Sprintf("Default gateway list written to %s, edit it and restart", path),
		Err:    absent,
	})
	return fmt.Errorf("%w: %w", switching.ErrRestartRequired, &switching.ConfigAbsentError{Path: path})
}

func (o *Orchestrator) switchTo(ctx context.Context, address string) {
	if !o.state.Phase.AcceptsSelection() {
		o.deps.Logger.Printf("selection of %s ignored while %s", address, o.state.Phase)
		return
	}
	candidate, ok := o.state.Candidates.Find(address)
	if !ok {
		o.deps.Logger.Printf("selection of %s ignored: not a configured gateway", address)
		return
	}

	o.state.Phase = switching.PhaseSwitching
	o.state.LastError = nil
	o.publish(ctx, switching.Update{
		Status:        fmt.Sprintf("Switching to %s", candidate.Label),
		Progress:      o.pacer.Start,
		ProgressStart: o.pacer.Start,
		ProgressEnd:   o.pacer.End,
	})

	// A dispatched switch runs to completion even if ctx is cancelled meanwhile.
	done := make(chan error, 1)
	go func() {
		done <- o.deps.Executor.Apply(context.WithoutCancel(ctx), address)
	}()

	var (
		err            error
		reloadDeferred bool
	)
wait:
	for {
		select {
		case err = <-done:
			break wait
		case <-o.selections:
			if ignored, ok := o.takePending(); ok {
				o.deps.Logger.Printf("selection of %s ignored: switch to %s in flight", ignored, address)
			}
		case <-o.refreshes:
		case <-o.reloads:
			reloadDeferred = true
		}
	}

	if err != nil {
		o.deps.Logger.Printf("switch to %s failed: %v", address, err)
		o.state.Phase = switching.PhaseAwaitingSelection
		o.state.LastError = err
		o.publish(ctx, switching.Update{
			Status:        "Failed to change gateway",
			Err:           err,
			Progress:      o.pacer.Start,
			ProgressStart: o.pacer.Start,
			ProgressEnd:   o.pacer.End,
		})
	} else {
		o.deps.Logger.Printf("default gateway switched to %s (%s)", address, candidate.Label)
		o.state.ActiveGateway = address
		_ = o.pacer.Run(ctx, func(value int) {
			o.publish(ctx, switching.Update{
				Status:        fmt.Sprintf("Switching to %s", candidate.Label),
				Progress:      value,
				ProgressStart: o.pacer.Start,
				ProgressEnd:   o.pacer.End,
			})
		})
		o.state.Phase = switching.PhaseSettled
		o.publish(ctx, switching.Update{
			Status:        "Done",
			Progress:      o.pacer.End,
			ProgressStart: o.pacer.Start,
			ProgressEnd:   o.pacer.End,
		})
	}

	if reloadDeferred {
		o.reload(ctx)
	}
}

func (o *Orchestrator) refresh(ctx context.Context) {
	if !o.state.Phase.AcceptsSelection() {
		return
	}
	active, ok := o.deps.Prober.Probe(ctx)
	if ok {
		o.state.ActiveGateway = active
		if errors.Is(o.state.LastError, switching.ErrProbeIndeterminate) {
			o.state.LastError = nil
		}
	} else {
		o.state.ActiveGateway = ""
		o.state.LastError = switching.ErrProbeIndeterminate
	}
	o.publish(ctx, switching.Update{Status: fmt.Sprintf("Current gateway: %s", o.state.ActiveDisplay())})
}

func (o *Orchestrator) reload(ctx context.Context) {
	if !o.state.Phase.AcceptsSelection() {
		return
	}
	store, err := o.deps.Source.Load(ctx)
	if err != nil {
		o.deps.Logger.Printf("gateway configuration reload failed, keeping %d gateway(s): %v", o.state.Candidates.Len(), err)
		o.state.LastError = err
		o.publish(ctx, switching.Update{Status: "Failed to reload gateway configuration", Err: err})
		return
	}
	o.state.Candidates = store
	if switching.KindOf(o.state.LastError) == switching.KindConfigUnreadable {
		o.state.LastError = nil
	}
	o.deps.Logger.Printf("gateway configuration reloaded: %d gateway(s), %d skipped line(s)", store.Len(), store.Skipped)
	o.publish(ctx, switching.Update{Status: fmt.Sprintf("Loaded %d gateway(s)", store.Len())})
}

func (o *Orchestrator) takePending() (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	address := o.pending
	o.pending = ""
	return address, address != ""
}

// publish stamps u with the current state, makes it visible to Snapshot and
// hands it to the presentation layer.
func (o *Orchestrator) publish(ctx context.Context, u switching.Update) {
	u.Phase = o.state.Phase
	u.State = o.state
	snapshot := o.state
	o.current.Store(&snapshot)
	select {
	case o.updates <- u:
	case <-ctx.Done():
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
