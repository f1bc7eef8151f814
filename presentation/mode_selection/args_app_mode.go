package mode_selection

import (
	"gwswitch/domain/app"
	"gwswitch/domain/mode"
	"strings"
)

type ArgsAppMode struct {
	arguments []string
}

// NewArgsAppMode expects os.Args, binary path included.
func NewArgsAppMode(arguments []string) *ArgsAppMode {
	return &ArgsAppMode{
		arguments: arguments,
	}
}

func (a *ArgsAppMode) Mode() (mode.Mode, error) {
	if len(a.arguments) == 0 {
		return mode.Unknown, mode.NewInvalidExecPathProvided()
	}

	if app.UIModeFor(a.arguments[1:]) == app.TUI {
		return mode.Interactive, nil
	}

	positional := app.Positional(a.arguments[1:])
	modeArgument := strings.TrimSpace(strings.ToLower(positional[0]))
	switch modeArgument {
	case "status":
		return mode.Status, nil
	case "switch":
		if len(positional) < 2 || strings.TrimSpace(positional[1]) == "" {
			return mode.Unknown, mode.NewMissingSwitchTarget()
		}
		return mode.Switch, nil
	case "version":
		return mode.Version, nil
	default:
		return mode.Unknown, mode.NewInvalidModeProvided(modeArgument)
	}
}

// SwitchTarget is the address or label following `switch`, if any.
func (a *ArgsAppMode) SwitchTarget() string {
	if len(a.arguments) == 0 {
		return ""
	}
	positional := app.Positional(a.arguments[1:])
	if len(positional) < 2 || !strings.EqualFold(positional[0], "switch") {
		return ""
	}
	return strings.TrimSpace(strings.Join(positional[1:], " "))
}
