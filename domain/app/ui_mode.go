package app

// UIMode describes how the application interacts with the operator.
type UIMode int

const (
	UnknownUIMode UIMode = iota
	TUI
	CLI
)

// UIModeFor picks the interactive TUI when no subcommand was given.
// arguments excludes the binary name.
func UIModeFor(arguments []string) UIMode {
	if len(Positional(arguments)) == 0 {
		return TUI
	}
	return CLI
}

// Positional drops flags and the value following a bare --config.
func Positional(arguments []string) []string {
	var result []string
	for i := 0; i < len(arguments); i++ {
		arg := arguments[i]
		if arg == "--config" {
			i++
			continue
		}
		if len(arg) > 0 && arg[0] == '-' {
			continue
		}
		result = append(result, arg)
	}
	return result
}
