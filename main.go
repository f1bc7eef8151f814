package main

import (
	"context"
	"errors"
	"fmt"
	"gwswitch/domain/app"
	"gwswitch/domain/mode"
	"gwswitch/domain/switching"
	"gwswitch/infrastructure/PAL/args"
	"gwswitch/infrastructure/logging"
	"gwswitch/infrastructure/settings"
	"gwswitch/presentation/elevation"
	"gwswitch/presentation/mode_selection"
	"gwswitch/presentation/runners/switcher"
	"gwswitch/presentation/runners/version"
	"gwswitch/presentation/ui/cli"
	"gwswitch/presentation/ui/tui"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	var am mode_selection.AppMode = mode_selection.NewArgsAppMode(os.Args)
	selectedMode, selectedModeErr := am.Mode()
	if selectedModeErr != nil {
		fmt.Println(selectedModeErr)
		printUsage()
		return 1
	}
	if selectedMode == mode.Version {
		version.NewRunner().Run(context.Background())
		return 0
	}

	if selectedMode != mode.Status {
		processElevation := elevation.NewProcessElevation()
		if !processElevation.IsElevated() {
			fmt.Printf("Warning: %s must be run with admin privileges. %s\n", app.Name, processElevation.Hint())
			return 1
		}
	}

	conf, confErr := settings.Load()
	if confErr != nil {
		fmt.Println(confErr)
		return 1
	}

	appCtx, appCtxCancel := context.WithCancel(context.Background())
	defer appCtxCancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		appCtxCancel()
	}()

	argsProvider := args.NewDefaultProvider()
	var (
		presenter switcher.Presenter
		session   switcher.Session
	)
	switch selectedMode {
	case mode.Status:
		presenter = cli.NewStatusPresenter(os.Stdout)
	case mode.Switch:
		presenter = cli.NewSwitchPresenter(os.Stdout, am.SwitchTarget())
		session.Provision = true
	default:
		buffer := logging.NewRingBuffer(conf.LogCapacity)
		restore := logging.RedirectStandardLogger(buffer)
		defer restore()
		presenter = tui.NewPresenter(tui.Options{
			LogFeed:         buffer,
			ExitAfterSwitch: conf.ExitAfterSwitch,
			ExitDelay:       conf.ExitDelay,
		})
		session = switcher.Session{Watch: true, Provision: true}
	}

	deps := switcher.NewDependencies(conf, argsProvider, session)
	runErr := switcher.NewRunner(deps, presenter, os.Stdout).Run(appCtx)
	if runErr == nil {
		return 0
	}
	// the runner already told the user where the new file is
	if !errors.Is(runErr, switching.ErrRestartRequired) {
		fmt.Println(runErr)
	}
	return 1
}

func printUsage() {
	fmt.Printf(`Usage: %s [--config <path>] [command]
Commands:
  (none)                    interactive gateway switcher
  status                    print the active gateway and configured gateways
  switch <address|label>    switch the default gateway
  version                   print the version
`, app.Name)
}
