package switching

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies failures surfaced to the operator.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindConfigUnreadable
	KindConfigAbsent
	KindProbeIndeterminate
	KindHealthCheckFailed
	KindExecutionFailed
	KindPrivilegeDenied
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConfigUnreadable:
		return "config unreadable"
	case KindConfigAbsent:
		return "config absent"
	case KindProbeIndeterminate:
		return "probe indeterminate"
	case KindHealthCheckFailed:
		return "health check failed"
	case KindExecutionFailed:
		return "execution failed"
	case KindPrivilegeDenied:
		return "privilege denied"
	default:
		return "unknown"
	}
}

var (
	ErrProbeIndeterminate = errors.New("default gateway could not be determined")
	ErrHealthCheckFailed  = errors.New("no required service is running, switching disabled")
	ErrExecutionFailed    = errors.New("route command failed")
	ErrPrivilegeDenied    = errors.New("route command requires elevated privileges")
	// ErrRestartRequired is returned after a default configuration was written;
	// the process must exit so the operator can edit it.
	ErrRestartRequired = errors.New("default configuration created, edit it and restart")
)

// ConfigAbsentError means the candidate file does not exist.
type ConfigAbsentError struct {
	Path string
}

func (e *ConfigAbsentError) Error() string {
	return fmt.Sprintf("gateway configuration %s does not exist", e.Path)
}

// ConfigUnreadableError means the candidate file exists but could not be read.
type ConfigUnreadableError struct {
	Path string
	Err  error
}

func (e *ConfigUnreadableError) Error() string {
	return fmt.Sprintf("gateway configuration %s is unreadable: %v", e.Path, e.Err)
}

func (e *ConfigUnreadableError) Unwrap() error {
	return e.Err
}

// Step names one of the two route invocations.
type Step string

const (
	StepValidate    Step = "validate"
	StepDeleteRoute Step = "delete default route"
	StepAddRoute    Step = "add default route"
)

// ExecutionError carries the captured standard error of the first failing step.
type ExecutionError struct {
	Step    Step
	Command string
	Stderr  string
	Err     error
}

func (e *ExecutionError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Step))
	b.WriteString(" failed")
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	}
	if e.Err != nil {
		b.WriteString(" (")
		b.WriteString(e.Err.Error())
		b.WriteString(")")
	}
	return b.String()
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrExecutionFailed for every ExecutionError and
// ErrPrivilegeDenied for those whose output looks like an elevation failure.
func (e *ExecutionError) Is(target error) bool {
	switch target {
	case ErrExecutionFailed:
		return true
	case ErrPrivilegeDenied:
		return e.PrivilegeDenied()
	}
	return false
}

var privilegeMarkers = []string{
	"requires elevation",
	"access is denied",
	"operation not permitted",
	"permission denied",
	"must be root",
}

// PrivilegeDenied is a best-effort guess from the captured output; a
// permission failure with an unfamiliar message stays a plain execution failure.
func (e *ExecutionError) PrivilegeDenied() bool {
	msg := strings.ToLower(e.Stderr)
	for _, marker := range privilegeMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// KindOf maps err onto an ErrorKind. nil maps to KindNone.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var absent *ConfigAbsentError
	var unreadable *ConfigUnreadableError
	switch {
	case errors.As(err, &absent), errors.Is(err, ErrRestartRequired):
		return KindConfigAbsent
	case errors.As(err, &unreadable):
		return KindConfigUnreadable
	case errors.Is(err, ErrProbeIndeterminate):
		return KindProbeIndeterminate
	case errors.Is(err, ErrHealthCheckFailed):
		return KindHealthCheckFailed
	case errors.Is(err, ErrPrivilegeDenied):
		return KindPrivilegeDenied
	case errors.Is(err, ErrExecutionFailed):
		return KindExecutionFailed
	default:
		return KindUnknown
	}
}
