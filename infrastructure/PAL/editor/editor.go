package editor

import (
	"errors"
	"gwswitch/infrastructure/PAL/exec_commander"
)

// ErrNoEditor means the platform has no editor to launch; the caller prints the path instead.
var ErrNoEditor = errors.New("no graphical editor available")

type Editor interface {
	Open(path string) error
}

// ProgramEditor launches program with the file path and does not wait for it.
type ProgramEditor struct {
	commander exec_commander.Commander
	program   string
}

func NewProgramEditor(commander exec_commander.Commander, program string) *ProgramEditor {
	return &ProgramEditor{commander: commander, program: program}
}

func (e *ProgramEditor) Open(path string) error {
	if e.program == "" {
		return ErrNoEditor
	}
	return e.commander.Start(e.program, path)
}
