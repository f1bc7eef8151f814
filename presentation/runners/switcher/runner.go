package switcher

import (
	"context"
	"errors"
	"fmt"
	"gwswitch/domain/app"
	"gwswitch/domain/switching"
	"gwswitch/infrastructure/PAL/editor"
	"gwswitch/presentation/ui"
	"io"
	"log"

	"golang.org/x/sync/errgroup"
)

// Presenter renders the orchestrator's updates until it is done.
type Presenter interface {
	Present(ctx context.Context, controller ui.Controller) error
}

type Runner struct {
	deps      AppDependencies
	presenter Presenter
	out       io.Writer
}

func NewRunner(deps AppDependencies, presenter Presenter, out io.Writer) *Runner {
	return &Runner{
		deps:      deps,
		presenter: presenter,
		out:       out,
	}
}

// Run drives one session. It returns the orchestrator's terminal error
// (health gate closed, default list written) or the presenter's error.
func (r *Runner) Run(ctx context.Context) error {
	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	orchestrator := r.deps.Orchestrator()
	var (
		eg     errgroup.Group
		runErr error
	)
	eg.Go(func() error {
		runErr = orchestrator.Run(sessionCtx)
		return nil
	})
	if watcher := r.deps.Watcher(); watcher != nil {
		eg.Go(func() error {
			watcher.Watch(sessionCtx)
			return nil
		})
	}

	presentErr := r.presenter.Present(sessionCtx, orchestrator)
	cancel()
	_ = eg.Wait()

	var absent *switching.ConfigAbsentError
	if errors.Is(runErr, switching.ErrRestartRequired) && errors.As(runErr, &absent) {
		r.askForEdit(absent.Path)
		return runErr
	}
	if presentErr != nil {
		return presentErr
	}
	return runErr
}

func (r *Runner) askForEdit(path string) {
	_, _ = fmt.Fprintf(r.out, "A default gateway list was written to %s.\nEdit it and restart %s.\n", path, app.Name)
	if err := r.deps.Editor().Open(path); err != nil && !errors.Is(err, editor.ErrNoEditor) {
		log.Printf("failed to open %s in an editor: %v", path, err)
	}
}
