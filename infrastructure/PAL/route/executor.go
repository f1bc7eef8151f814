package route

import (
	"context"
	"errors"
	"fmt"
	"gwswitch/application/logging"
	"gwswitch/domain/gateway"
	"gwswitch/domain/switching"
	"gwswitch/infrastructure/PAL/exec_commander"
	"strings"
)

// Commands holds the argv of the two routing-table invocations.
type Commands struct {
	Delete []string
	Add    func(address string) []string
	// NoRoute lists output fragments a failed Delete prints when there is no
	// default route to remove. Such a failure lets Add go ahead.
	NoRoute []string
}

// Executor replaces the host default route in two sequential steps. A failed
// add leaves the host without a default route; nothing is rolled back, but the
// next Apply tolerates the missing route on delete and can restore one.
type Executor struct {
	commander exec_commander.Commander
	commands  Commands
	logger    logging.Logger
}

func NewExecutor(commander exec_commander.Commander, commands Commands, logger logging.Logger) *Executor {
	return &Executor{
		commander: commander,
		commands:  commands,
		logger:    logger,
	}
}

func (e *Executor) Apply(ctx context.Context, address string) error {
	address = strings.TrimSpace(address)
	if !gateway.IsIPv4Shape(address) {
		return &switching.ExecutionError{
			Step: switching.StepValidate,
			Err:  fmt.Errorf("%q is not an IPv4 address", address),
		}
	}
	if err := e.run(ctx, switching.StepDeleteRoute, e.commands.Delete); err != nil {
		if !e.noRoute(err) {
			return err
		}
		e.logger.Printf("no default route to delete, adding %s", address)
	}
	return e.run(ctx, switching.StepAddRoute, e.commands.Add(address))
}

// run fails on non-empty stderr or a non-zero exit, whichever shows first.
func (e *Executor) run(ctx context.Context, step switching.Step, argv []string) error {
	if len(argv) == 0 {
		return &switching.ExecutionError{Step: step, Err: fmt.Errorf("no command configured")}
	}
	command := strings.Join(argv, " ")
	e.logger.Printf("%s: %s", step, command)
	stdout, stderr, err := e.commander.Capture(ctx, argv[0], argv[1:]...)
	text := strings.TrimSpace(string(stderr))
	if text == "" && err == nil {
		return nil
	}
	if text == "" {
		// Windows route reports its own failures on stdout.
		text = strings.TrimSpace(string(stdout))
	}
	return &switching.ExecutionError{
		Step:    step,
		Command: command,
		Stderr:  text,
		Err:     err,
	}
}

func (e *Executor) noRoute(err error) bool {
	var execErr *switching.ExecutionError
	if !errors.As(err, &execErr) || execErr.Stderr == "" {
		return false
	}
	text := strings.ToLower(execErr.Stderr)
	for _, fragment := range e.commands.NoRoute {
		if strings.Contains(text, strings.ToLower(fragment)) {
			return true
		}
	}
	return false
}
