//go:build windows

package services

import (
	"gwswitch/application/logging"
	"gwswitch/infrastructure/PAL/exec_commander"
)

func NewPlatformGate(commander exec_commander.Commander, logger logging.Logger) *Gate {
	return NewGate(
		logger,
		NewServiceManagerCheck(),
		NewCommandCheck(commander, ParseTasklistCSV, "tasklist", "/FO", "CSV", "/NH"),
	)
}
