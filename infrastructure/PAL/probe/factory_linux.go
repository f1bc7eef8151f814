//go:build linux

package probe

import (
	"gwswitch/application/logging"
	"gwswitch/infrastructure/PAL/exec_commander"
)

func NewPlatformProber(commander exec_commander.Commander, logger logging.Logger) *DiagnosticProber {
	return NewDiagnosticProber(commander, logger, ParseDefaultRoute, "ip", "-4", "route", "show", "default")
}
