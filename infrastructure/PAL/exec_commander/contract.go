package exec_commander

import "context"

// Commander abstracts platform-specific command execution (e.g., via exec.CommandContext).
type Commander interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
	// Capture returns stdout and stderr separately; err reports spawn failures and non-zero exits.
	Capture(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
	// Start launches a detached process and does not wait for it.
	Start(name string, args ...string) error
}
