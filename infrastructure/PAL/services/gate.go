package services

import (
	"context"
	"gwswitch/application/logging"
	"strings"
)

// Check reports whether any of names is running. An error means the check
// could not be performed, not that the services are down.
type Check interface {
	Name() string
	AnyRunning(ctx context.Context, names []string) (bool, error)
}

// Gate permits switching when any required service runs. Checks are tried in
// order; the first one that completes decides. When every check fails the gate
// stays closed.
type Gate struct {
	checks []Check
	logger logging.Logger
}

func NewGate(logger logging.Logger, checks ...Check) *Gate {
	return &Gate{
		checks: checks,
		logger: logger,
	}
}

func (g *Gate) IsSwitchingPermitted(ctx context.Context, serviceNames []string) bool {
	names := normalize(serviceNames)
	if len(names) == 0 {
		g.logger.Printf("no required services configured")
		return false
	}
	for _, check := range g.checks {
		if ctx.Err() != nil {
			return false
		}
		running, err := check.AnyRunning(ctx, names)
		if err != nil {
			g.logger.Printf("service check %s failed: %v", check.Name(), err)
			continue
		}
		return running
	}
	return false
}

func normalize(names []string) []string {
	result := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			result = append(result, name)
		}
	}
	return result
}

// containsAny matches running against names case-insensitively.
func containsAny(running, names []string) bool {
	for _, candidate := range running {
		for _, name := range names {
			if strings.EqualFold(candidate, name) {
				return true
			}
		}
	}
	return false
}
