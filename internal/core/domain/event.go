package domain

// ActionEventKind identifies a lifecycle notification emitted while applying a plan.
type ActionEventKind string

const (
	// EventInstalling is emitted before the project installs a package.
	EventInstalling ActionEventKind = "installing"
	// EventInstalled is emitted after the project installed a package.
	EventInstalled ActionEventKind = "installed"
	// EventUninstalling is emitted before the project removes a package.
	EventUninstalling ActionEventKind = "uninstalling"
	// EventUninstalled is emitted after the project removed a package.
	EventUninstalled ActionEventKind = "uninstalled"
)

// IsPre reports whether the event precedes the project mutation.
func (k ActionEventKind) IsPre() bool {
	return k == EventInstalling || k == EventUninstalling
}

// ActionEvent is a lifecycle notification for a single action.
type ActionEvent struct {
	Kind     ActionEventKind
	Identity Identity
	Project  string
}
