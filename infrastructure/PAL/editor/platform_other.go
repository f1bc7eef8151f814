//go:build !windows

package editor

import "gwswitch/infrastructure/PAL/exec_commander"

// NewPlatformEditor has no program to launch: a root shell has no desktop session to open one in.
func NewPlatformEditor(commander exec_commander.Commander) Editor {
	return NewProgramEditor(commander, "")
}
