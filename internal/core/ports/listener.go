package ports

import "go.trai.ch/pkgr/internal/core/domain"

// ActionListener receives lifecycle notifications while a plan is applied.
// Notifications are delivered synchronously on the executing goroutine, in action order.
// A listener cannot cancel the action it is notified about.
//
//go:generate go run go.uber.org/mock/mockgen -source=listener.go -destination=mocks/mock_listener.go -package=mocks
type ActionListener interface {
	OnAction(event domain.ActionEvent)
}

// ActionListenerFunc adapts a function to ActionListener.
type ActionListenerFunc func(event domain.ActionEvent)

// OnAction calls f(event).
func (f ActionListenerFunc) OnAction(event domain.ActionEvent) {
	f(event)
}
