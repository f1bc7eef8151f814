//go:build windows

package exec_commander

import (
	"os/exec"
	"strconv"
	"syscall"
)

// prepare keeps cmd.exe, route and ipconfig from flashing a console window
// and makes cancellation take down the whole tree (cmd /c spawns route).
func prepare(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	cmd.Cancel = func() error {
		kill := exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(cmd.Process.Pid))
		kill.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
		if err := kill.Run(); err != nil {
			return cmd.Process.Kill()
		}
		return nil
	}
}
