//go:build windows

package elevation

import "golang.org/x/sys/windows"

type ProcessElevationImpl struct {
}

func NewProcessElevation() ProcessElevation {
	return &ProcessElevationImpl{}
}

// IsElevated checks membership of the built-in Administrators group in the process token.
func (p *ProcessElevationImpl) IsElevated() bool {
	sid, err := windows.CreateWellKnownSid(windows.WinBuiltinAdministratorsSid)
	if err != nil {
		return false
	}

	token := windows.Token(0)
	member, err := token.IsMember(sid)
	if err != nil {
		return false
	}

	return member
}

func (p *ProcessElevationImpl) Hint() string {
	return "Please restart the application as Administrator (right-click -> 'Run as Administrator')."
}
