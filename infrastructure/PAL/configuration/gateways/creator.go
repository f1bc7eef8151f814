package gateways

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultCreator writes a fresh candidate list. It never replaces an existing file.
type DefaultCreator struct {
	resolver Resolver
}

func NewDefaultCreator(resolver Resolver) *DefaultCreator {
	return &DefaultCreator{
		resolver: resolver,
	}
}

func (d *DefaultCreator) Provision(lines []string) (string, error) {
	path, err := d.resolver.Resolve()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return path, err
	}
	_, writeErr := file.WriteString(strings.Join(lines, "\n") + "\n")
	closeErr := file.Close()
	if writeErr != nil {
		return path, writeErr
	}
	return path, closeErr
}
