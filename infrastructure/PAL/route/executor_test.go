package route

import (
	"context"
	"errors"
	"gwswitch/domain/switching"
	"reflect"
	"strings"
	"testing"
)

type executorCall struct {
	name string
	args []string
}

type executorResult struct {
	stdout string
	stderr string
	err    error
}

// ExecutorMockCommander records Capture calls and replays results in order.
type ExecutorMockCommander struct {
	calls   []executorCall
	results []executorResult
}

func (m *ExecutorMockCommander) Capture(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	m.calls = append(m.calls, executorCall{name: name, args: append([]string(nil), args...)})
	if len(m.results) == 0 {
		return nil, nil, nil
	}
	r := m.results[0]
	m.results = m.results[1:]
	return []byte(r.stdout), []byte(r.stderr), r.err
}

func (m *ExecutorMockCommander) Output(_ context.Context, _ string, _ ...string) ([]byte, error) {
	return nil, errors.New("unexpected Output call")
}

func (m *ExecutorMockCommander) CombinedOutput(_ context.Context, _ string, _ ...string) ([]byte, error) {
	return nil, errors.New("unexpected CombinedOutput call")
}

func (m *ExecutorMockCommander) Start(_ string, _ ...string) error {
	return errors.New("unexpected Start call")
}

type executorTestLogger struct{ lines []string }

func (l *executorTestLogger) Printf(format string, _ ...any) { l.lines = append(l.lines, format) }

func testCommands() Commands {
	return Commands{
		Delete: []string{"cmd", "/c", "route", "delete", "0.0.0.0", "mask", "0.0.0.0"},
		Add: func(address string) []string {
			return []string{"cmd", "/c", "route", "-p", "add", "0.0.0.0", "mask", "0.0.0.0", address}
		},
	}
}

func TestExecutor_Apply_Success_DeletesBeforeAdding(t *testing.T) {
	mock := &ExecutorMockCommander{results: []executorResult{{stdout: " OK!"}, {stdout: " OK!"}}}
	e := NewExecutor(mock, testCommands(), &executorTestLogger{})

	if err := e.Apply(context.Background(), "192.168.1.2"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(mock.calls) != 2 {
		t.Fatalf("expected 2 invocations, got %d", len(mock.calls))
	}
	wantDelete := []string{"/c", "route", "delete", "0.0.0.0", "mask", "0.0.0.0"}
	if mock.calls[0].name != "cmd" || !reflect.DeepEqual(mock.calls[0].args, wantDelete) {
		t.Fatalf("first call should delete the default route, got %v", mock.calls[0])
	}
	wantAdd := []string{"/c", "route", "-p", "add", "0.0.0.0", "mask", "0.0.0.0", "192.168.1.2"}
	if mock.calls[1].name != "cmd" || !reflect.DeepEqual(mock.calls[1].args, wantAdd) {
		t.Fatalf("second call should add the new default route, got %v", mock.calls[1])
	}
}

func TestExecutor_Apply_DeleteStderr_StopsBeforeAdd(t *testing.T) {
	mock := &ExecutorMockCommander{results: []executorResult{{stderr: "The requested operation requires elevation.\r\n"}}}
	e := NewExecutor(mock, testCommands(), &executorTestLogger{})

	err := e.Apply(context.Background(), "192.168.1.2")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(mock.calls) != 1 {
		t.Fatalf("add must not run after a failed delete, got %d calls", len(mock.calls))
	}
	var execErr *switching.ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *ExecutionError, got %T", err)
	}
	if execErr.Step != switching.StepDeleteRoute {
		t.Fatalf("expected delete step, got %q", execErr.Step)
	}
	if execErr.Stderr != "The requested operation requires elevation." {
		t.Fatalf("unexpected captured text %q", execErr.Stderr)
	}
	if !errors.Is(err, switching.ErrPrivilegeDenied) {
		t.Fatal("expected privilege classification")
	}
}

func TestExecutor_Apply_AddStderr_NoRollback(t *testing.T) {
	mock := &ExecutorMockCommander{results: []executorResult{{}, {stderr: "The route addition failed: The parameter is incorrect."}}}
	e := NewExecutor(mock, testCommands(), &executorTestLogger{})

	err := e.Apply(context.Background(), "10.0.0.1")
	var execErr *switching.ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *ExecutionError, got %v", err)
	}
	if execErr.Step != switching.StepAddRoute {
		t.Fatalf("expected add step, got %q", execErr.Step)
	}
	if !strings.Contains(execErr.Command, "10.0.0.1") {
		t.Fatalf("expected command to be recorded, got %q", execErr.Command)
	}
	if len(mock.calls) != 2 {
		t.Fatalf("expected exactly delete and add, got %d calls", len(mock.calls))
	}
	if switching.KindOf(err) != switching.KindExecutionFailed {
		t.Fatalf("expected execution failure kind, got %v", switching.KindOf(err))
	}
}

func TestExecutor_Apply_NonZeroExitWithoutStderr(t *testing.T) {
	exitErr := errors.New("exit status 1")
	mock := &ExecutorMockCommander{results: []executorResult{{stdout: "The route deletion failed: Element not found.", err: exitErr}}}
	e := NewExecutor(mock, testCommands(), &executorTestLogger{})

	err := e.Apply(context.Background(), "10.0.0.1")
	if !errors.Is(err, exitErr) {
		t.Fatalf("expected wrapped exit error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Element not found") {
		t.Fatalf("expected stdout to be surfaced, got %q", err.Error())
	}
}

func TestExecutor_Apply_StderrWithZeroExitIsFailure(t *testing.T) {
	mock := &ExecutorMockCommander{results: []executorResult{{stderr: "warning"}}}
	e := NewExecutor(mock, testCommands(), &executorTestLogger{})

	if err := e.Apply(context.Background(), "10.0.0.1"); !errors.Is(err, switching.ErrExecutionFailed) {
		t.Fatalf("expected execution failure, got %v", err)
	}
}

func TestExecutor_Apply_RejectsMalformedAddress(t *testing.T) {
	for _, address := range []string{"", "10.0.0", "10.0.0.256", "fe80::1", "10.0.0.1; rm -rf /"} {
		mock := &ExecutorMockCommander{}
		e := NewExecutor(mock, testCommands(), &executorTestLogger{})

		err := e.Apply(context.Background(), address)
		var execErr *switching.ExecutionError
		if !errors.As(err, &execErr) || execErr.Step != switching.StepValidate {
			t.Fatalf("%q: expected validation error, got %v", address, err)
		}
		if len(mock.calls) != 0 {
			t.Fatalf("%q: no command may run for a malformed address", address)
		}
	}
}

func TestExecutor_Apply_EmptyDeleteCommand(t *testing.T) {
	mock := &ExecutorMockCommander{}
	commands := testCommands()
	commands.Delete = nil
	e := NewExecutor(mock, commands, &executorTestLogger{})

	if err := e.Apply(context.Background(), "10.0.0.1"); err == nil {
		t.Fatal("expected error for missing command")
	}
	if len(mock.calls) != 0 {
		t.Fatalf("expected no calls, got %d", len(mock.calls))
	}
}

func TestPlatformCommands_AddTargetsAddress(t *testing.T) {
	commands := PlatformCommands()
	if len(commands.Delete) == 0 {
		t.Fatal("expected a delete command")
	}
	add := commands.Add("192.168.7.1")
	if add[len(add)-1] != "192.168.7.1" {
		t.Fatalf("expected address as last argument, got %v", add)
	}
}

func TestExecutor_Apply_MissingDefaultRouteStillAdds(t *testing.T) {
	commands := testCommands()
	commands.NoRoute = []string{"Element not found"}
	mock := &ExecutorMockCommander{results: []executorResult{
		{stdout: "The route deletion failed: Element not found.", err: errors.New("exit status 1")},
		{stdout: " OK!"},
	}}
	e := NewExecutor(mock, commands, &executorTestLogger{})

	if err := e.Apply(context.Background(), "192.168.1.2"); err != nil {
		t.Fatalf("expected the add to restore a default route, got %v", err)
	}
	if len(mock.calls) != 2 {
		t.Fatalf("expected delete and add, got %d calls", len(mock.calls))
	}
}

func TestExecutor_Apply_OtherDeleteFailuresStillStop(t *testing.T) {
	commands := testCommands()
	commands.NoRoute = []string{"No such process"}
	mock := &ExecutorMockCommander{results: []executorResult{
		{stderr: "RTNETLINK answers: Operation not permitted", err: errors.New("exit status 2")},
	}}
	e := NewExecutor(mock, commands, &executorTestLogger{})

	err := e.Apply(context.Background(), "192.168.1.2")
	var execErr *switching.ExecutionError
	if !errors.As(err, &execErr) || execErr.Step != switching.StepDeleteRoute {
		t.Fatalf("expected a delete step failure, got %v", err)
	}
	if len(mock.calls) != 1 {
		t.Fatalf("add must not run, got %d calls", len(mock.calls))
	}
}
