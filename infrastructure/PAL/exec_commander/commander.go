package exec_commander

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// waitDelay bounds how long Wait keeps reading output after cancellation.
const waitDelay = 2 * time.Second

type ExecCommander struct {
	timeout time.Duration
}

// NewExecCommander bounds every invocation by timeout; zero leaves it unbounded.
func NewExecCommander(timeout time.Duration) Commander {
	return &ExecCommander{timeout: timeout}
}

func (r *ExecCommander) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	return r.command(ctx, name, args...).Output()
}

func (r *ExecCommander) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	return r.command(ctx, name, args...).CombinedOutput()
}

func (r *ExecCommander) Capture(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	var stdout, stderr bytes.Buffer
	cmd := r.command(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

func (r *ExecCommander) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func (r *ExecCommander) command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	prepare(cmd)
	cmd.WaitDelay = waitDelay
	return cmd
}

func (r *ExecCommander) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}
