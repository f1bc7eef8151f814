package gateways

import (
	"gwswitch/infrastructure/PAL/args"
	"strings"
)

const (
	configFlag   = "--config"
	configFlagEq = "--config="
)

// ArgumentResolver prefers a --config argument over the wrapped resolver.
type ArgumentResolver struct {
	resolver     Resolver
	argsProvider args.Provider
}

func NewArgumentResolver(resolver Resolver, argsProvider args.Provider) Resolver {
	return &ArgumentResolver{
		resolver:     resolver,
		argsProvider: argsProvider,
	}
}

func (a *ArgumentResolver) Resolve() (string, error) {
	if path, ok := a.configPathArgument(); ok {
		return path, nil
	}
	return a.resolver.Resolve()
}

func (a *ArgumentResolver) configPathArgument() (string, bool) {
	arguments := a.argsProvider.Args()
	for i := 0; i < len(arguments); i++ {
		arg := arguments[i]
		// case: --config=/path/to/gateways.txt
		if path, ok := strings.CutPrefix(arg, configFlagEq); ok {
			return path, path != ""
		}
		// case: --config /path/to/gateways.txt
		if arg == configFlag && i+1 < len(arguments) {
			path := arguments[i+1]
			if path != "" && !strings.HasPrefix(path, "-") {
				return path, true
			}
			return "", false
		}
	}
	return "", false
}
