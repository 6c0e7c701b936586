package ui

import (
	"moviegrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// detailPagerMsg reports how the detail pager exited
type detailPagerMsg struct {
	movieID int
	err     error
}

// pauseRenderingMsg signals that the pager owns the terminal
type pauseRenderingMsg struct{}

// clearStatusMsg clears the status bar
type clearStatusMsg struct{}
