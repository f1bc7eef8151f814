package args

// Provider supplies the process arguments without the binary name.
type Provider interface {
	Args() []string
}
