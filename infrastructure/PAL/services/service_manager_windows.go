//go:build windows

package services

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

// ServiceManagerCheck asks the Windows service control manager. A service
// in any state other than Stopped counts as running.
type ServiceManagerCheck struct{}

func NewServiceManagerCheck() *ServiceManagerCheck {
	return &ServiceManagerCheck{}
}

func (c *ServiceManagerCheck) Name() string {
	return "service control manager"
}

func (c *ServiceManagerCheck) AnyRunning(ctx context.Context, names []string) (bool, error) {
	m, err := mgr.Connect()
	if err != nil {
		return false, fmt.Errorf("connect: %w", err)
	}
	defer func() {
		_ = m.Disconnect()
	}()

	installed, err := m.ListServices()
	if err != nil {
		return false, fmt.Errorf("list services: %w", err)
	}
	for _, service := range installed {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if !containsAny([]string{service}, names) {
			continue
		}
		running, queryErr := isRunning(m, service)
		if queryErr != nil {
			return false, fmt.Errorf("query %s: %w", service, queryErr)
		}
		if running {
			return true, nil
		}
	}
	return false, nil
}

func isRunning(m *mgr.Mgr, name string) (bool, error) {
	s, err := m.OpenService(name)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = s.Close()
	}()
	status, err := s.Query()
	if err != nil {
		return false, err
	}
	return status.State != svc.Stopped, nil
}

