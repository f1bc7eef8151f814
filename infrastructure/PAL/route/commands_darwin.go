//go:build darwin

package route

func PlatformCommands() Commands {
	return Commands{
		Delete: []string{"route", "-n", "delete", "default"},
		Add: func(address string) []string {
			return []string{"route", "-n", "add", "default", address}
		},
		NoRoute: []string{"not in table"},
	}
}
