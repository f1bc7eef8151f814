package mode

type Mode int

const (
	Unknown Mode = iota
	// Interactive starts the terminal UI
	Interactive
	// Status prints the health gate, the active gateway and the candidates
	Status
	// Switch replaces the default route with the given candidate
	Switch
	// Version prints the build tag
	Version
)
