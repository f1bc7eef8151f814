//go:build linux

package services

import (
	"gwswitch/application/logging"
	"gwswitch/infrastructure/PAL/exec_commander"
)

func NewPlatformGate(commander exec_commander.Commander, logger logging.Logger) *Gate {
	return NewGate(
		logger,
		NewCommandCheck(commander, ParseSystemdUnits,
			"systemctl", "list-units", "--type=service", "--state=running", "--no-legend", "--plain"),
		NewCommandCheck(commander, ParseProcessNames, "ps", "-eo", "comm="),
	)
}
