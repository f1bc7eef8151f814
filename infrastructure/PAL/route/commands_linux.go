//go:build linux

package route

func PlatformCommands() Commands {
	return Commands{
		Delete: []string{"ip", "-4", "route", "del", "default"},
		Add: func(address string) []string {
			return []string{"ip", "-4", "route", "add", "default", "via", address}
		},
		NoRoute: []string{"No such process"},
	}
}
