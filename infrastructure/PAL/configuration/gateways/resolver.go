package gateways

// FileName is the candidate list file name on every platform.
const FileName = "gateways.txt"

// Resolver resolves the candidate list path.
type Resolver interface {
	Resolve() (string, error)
}
