//go:build windows

package editor

import "gwswitch/infrastructure/PAL/exec_commander"

func NewPlatformEditor(commander exec_commander.Commander) Editor {
	return NewProgramEditor(commander, "notepad")
}
