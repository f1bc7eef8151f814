//go:build windows

package route

// PlatformCommands runs route through cmd.exe and makes the new route persistent.
func PlatformCommands() Commands {
	return Commands{
		Delete: []string{"cmd", "/c", "route", "delete", "0.0.0.0", "mask", "0.0.0.0"},
		Add: func(address string) []string {
			return []string{"cmd", "/c", "route", "-p", "add", "0.0.0.0", "mask", "0.0.0.0", address}
		},
		NoRoute: []string{"Element not found"},
	}
}
