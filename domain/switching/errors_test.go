package switching

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"absent", &ConfigAbsentError{Path: "C:\\gateways.txt"}, KindConfigAbsent},
		{"restart required", fmt.Errorf("%w: %w", ErrRestartRequired, &ConfigAbsentError{Path: "x"}), KindConfigAbsent},
		{"unreadable", &ConfigUnreadableError{Path: "x", Err: errors.New("EACCES")}, KindConfigUnreadable},
		{"probe", ErrProbeIndeterminate, KindProbeIndeterminate},
		{"health", fmt.Errorf("startup: %w", ErrHealthCheckFailed), KindHealthCheckFailed},
		{"execution", &ExecutionError{Step: StepAddRoute, Stderr: "The route addition failed: The parameter is incorrect."}, KindExecutionFailed},
		{"privilege", &ExecutionError{Step: StepDeleteRoute, Stderr: "The requested operation requires elevation."}, KindPrivilegeDenied},
		{"other", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExecutionError_MatchesExecutionFailedWhenPrivilegeDenied(t *testing.T) {
	err := error(&ExecutionError{Step: StepAddRoute, Stderr: "RTNETLINK answers: Operation not permitted"})
	if !errors.Is(err, ErrExecutionFailed) {
		t.Fatal("privilege failures must still match ErrExecutionFailed")
	}
	if !errors.Is(err, ErrPrivilegeDenied) {
		t.Fatal("expected ErrPrivilegeDenied match")
	}
}

func TestExecutionError_Message(t *testing.T) {
	err := &ExecutionError{
		Step:   StepDeleteRoute,
		Stderr: "  The route deletion failed: Element not found.\r\n",
		Err:    errors.New("exit status 1"),
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "delete default route failed: The route deletion failed: Element not found.") {
		t.Fatalf("unexpected message %q", msg)
	}
	if !strings.Contains(msg, "exit status 1") {
		t.Fatalf("expected wrapped error in message, got %q", msg)
	}
}

func TestConfigUnreadableError_Unwrap(t *testing.T) {
	inner := errors.New("is a directory")
	err := &ConfigUnreadableError{Path: "/etc/gwswitch/gateways.txt", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatal("expected Unwrap to expose the cause")
	}
}
