package switcher

import (
	"context"
	appSwitching "gwswitch/application/switching"
	"gwswitch/infrastructure/PAL/args"
	"gwswitch/infrastructure/PAL/configuration/gateways"
	"gwswitch/infrastructure/PAL/editor"
	"gwswitch/infrastructure/PAL/exec_commander"
	"gwswitch/infrastructure/PAL/probe"
	"gwswitch/infrastructure/PAL/route"
	"gwswitch/infrastructure/PAL/services"
	"gwswitch/infrastructure/logging"
	"gwswitch/infrastructure/settings"
)

// Watcher reports changes of the candidate file until ctx is done.
type Watcher interface {
	Watch(ctx context.Context)
}

type AppDependencies interface {
	Orchestrator() *appSwitching.Orchestrator
	// Watcher is nil when live reload is off.
	Watcher() Watcher
	Editor() editor.Editor
}

type Dependencies struct {
	orchestrator *appSwitching.Orchestrator
	watcher      Watcher
	editor       editor.Editor
}

// Session selects what a run may do besides switching.
type Session struct {
	// Watch enables live reload of the candidate file, subject to WATCH_CONFIG.
	Watch bool
	// Provision writes the default candidate file when none exists.
	Provision bool
}

func NewDependencies(s settings.Settings, argsProvider args.Provider, session Session) AppDependencies {
	commander := exec_commander.NewExecCommander(s.CommandTimeout)
	resolver := gateways.NewArgumentResolver(gateways.NewDefaultResolver(), argsProvider)

	core := appSwitching.Dependencies{
		Gate:     services.NewPlatformGate(commander, logging.NewLogLogger("services")),
		Services: s.RequiredServices,
		Source:   gateways.NewFileSource(resolver),
		Prober:   probe.NewPlatformProber(commander, logging.NewLogLogger("probe")),
		Executor: route.NewExecutor(commander, route.PlatformCommands(), logging.NewLogLogger("route")),
		Logger:   logging.NewLogLogger("switch"),
	}
	if session.Provision {
		core.Provisioner = gateways.NewDefaultCreator(resolver)
	}
	orchestrator := appSwitching.NewOrchestrator(
		core,
		appSwitching.Options{
			Pacer: appSwitching.NewPacer(s.ProgressStart, s.ProgressEnd, s.ProgressDelay),
		},
	)

	deps := &Dependencies{
		orchestrator: orchestrator,
		editor:       editor.NewPlatformEditor(commander),
	}
	if session.Watch && s.WatchConfig {
		deps.watcher = gateways.NewWatcher(orchestrator, resolver, s.WatchPollInterval, logging.NewLogLogger("config"))
	}
	return deps
}

func (d *Dependencies) Orchestrator() *appSwitching.Orchestrator {
	return d.orchestrator
}

func (d *Dependencies) Watcher() Watcher {
	return d.watcher
}

func (d *Dependencies) Editor() editor.Editor {
	return d.editor
}
