//go:build windows

package gateways

import (
	"os"
	"path/filepath"
)

const fallbackPath = `C:\` + FileName

// DefaultResolver places the list at the root of the volume holding the executable.
type DefaultResolver struct {
	executable func() (string, error)
}

func NewDefaultResolver() Resolver {
	return DefaultResolver{executable: os.Executable}
}

func (r DefaultResolver) Resolve() (string, error) {
	exe, err := r.executable()
	if err != nil {
		return fallbackPath, nil
	}
	volume := filepath.VolumeName(exe)
	if volume == "" {
		return fallbackPath, nil
	}
	return volume + `\` + FileName, nil
}
