package ui

import "gwswitch/domain/switching"

// Controller is the orchestrator surface the presentation layer drives.
type Controller interface {
	Select(address string) bool
	Refresh()
	Updates() <-chan switching.Update
	Snapshot() switching.State
}
