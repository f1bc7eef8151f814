package args

import "os"

type DefaultProvider struct {
}

func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{}
}

func (d *DefaultProvider) Args() []string {
	// skip binary name(e.g. gwswitch), which is first argument
	return os.Args[1:]
}

// StaticProvider serves a fixed argument list.
type StaticProvider []string

func (s StaticProvider) Args() []string {
	return s
}
