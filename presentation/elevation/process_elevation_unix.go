//go:build unix

package elevation

import "golang.org/x/sys/unix"

// ProcessElevationImpl implements ProcessElevation on macOS/Linux.
type ProcessElevationImpl struct {
}

func NewProcessElevation() ProcessElevation {
	return &ProcessElevationImpl{}
}

// IsElevated returns true if we're running as root.
func (p *ProcessElevationImpl) IsElevated() bool {
	return unix.Geteuid() == 0
}

func (p *ProcessElevationImpl) Hint() string {
	return "Please restart the application as root (e.g. sudo gwswitch)."
}
