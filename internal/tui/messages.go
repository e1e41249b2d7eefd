package tui

import "github.com/jfarabee/signon/internal/service"

// coordinatorEvent wraps one coordinator event for delivery through the
// Bubble Tea message loop.
type coordinatorEvent struct {
	ev service.Event
}

// eventsClosed signals that the coordinator event channel was closed.
type eventsClosed struct{}

// copiedMsg reports a successful clipboard copy.
type copiedMsg struct{}

// copyFailedMsg reports a failed clipboard copy.
type copyFailedMsg struct {
	err error
}

// clearStatusMsg clears the transient status line on the account screen.
type clearStatusMsg struct{}
