package mode

import "fmt"

type InvalidModeProvided struct {
	mode string
}

func NewInvalidModeProvided(mode string) InvalidModeProvided {
	return InvalidModeProvided{
		mode: mode,
	}
}

func (i InvalidModeProvided) Error() string {
	if i.mode == "" {
		return "empty string is not a valid mode"
	}
	return fmt.Sprintf("%s is not a valid mode", i.mode)
}

// InvalidExecPathProvided is returned when os.Args is empty.
type InvalidExecPathProvided struct {
}

func NewInvalidExecPathProvided() InvalidExecPathProvided {
	return InvalidExecPathProvided{}
}

func (i InvalidExecPathProvided) Error() string {
	return "missing execution binary path as first argument"
}

// MissingSwitchTarget is returned when `switch` is given without a gateway.
type MissingSwitchTarget struct {
}

func NewMissingSwitchTarget() MissingSwitchTarget {
	return MissingSwitchTarget{}
}

func (m MissingSwitchTarget) Error() string {
	return "switch requires a gateway address or label"
}
