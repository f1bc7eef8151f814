//go:build windows

package probe

import (
	"gwswitch/application/logging"
	"gwswitch/infrastructure/PAL/exec_commander"
)

// Markers printed by ipconfig on English and Vietnamese Windows.
var markers = []string{"Default Gateway", "Gateway mặc định"}

func NewPlatformProber(commander exec_commander.Commander, logger logging.Logger) *DiagnosticProber {
	return NewDiagnosticProber(commander, logger, MarkerParser(markers...), "ipconfig")
}
