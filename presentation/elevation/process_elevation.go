package elevation

// ProcessElevation reports whether route changes can be made by this process.
type ProcessElevation interface {
	IsElevated() bool
	Hint() string
}
