//go:build darwin

package services

import (
	"gwswitch/application/logging"
	"gwswitch/infrastructure/PAL/exec_commander"
)

func NewPlatformGate(commander exec_commander.Commander, logger logging.Logger) *Gate {
	return NewGate(
		logger,
		NewCommandCheck(commander, ParseLaunchctlList, "launchctl", "list"),
		NewCommandCheck(commander, ParseProcessNames, "ps", "-axco", "comm="),
	)
}
