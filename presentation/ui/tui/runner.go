package tui

import (
	"context"
	"errors"
	"gwswitch/presentation/ui"

	tea "github.com/charmbracelet/bubbletea"
)

type teaRunner interface {
	Run(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error)
}

type defaultTeaRunner struct{}

func (r defaultTeaRunner) Run(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(model, opts...).Run()
}

// Presenter shows the dashboard until the operator quits or the orchestrator stops.
type Presenter struct {
	options Options
	runner  teaRunner
}

func NewPresenter(options Options) *Presenter {
	return &Presenter{options: options, runner: defaultTeaRunner{}}
}

func (p *Presenter) Present(ctx context.Context, controller ui.Controller) error {
	model := NewDashboard(ctx, controller, p.options)
	_, err := p.runner.Run(model, tea.WithContext(ctx), tea.WithAltScreen())
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil) {
		return nil
	}
	return err
}
