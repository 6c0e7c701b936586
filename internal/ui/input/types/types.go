package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeSearch sends keys to the search box
	ModeSearch Mode = iota
	// ModeBrowse moves through results and pages
	ModeBrowse
)

func (m Mode) String() string {
	if m == ModeBrowse {
		return "browse"
	}
	return "search"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CurrentPage() int
	TotalPages() int
	Loading() bool
	// Failed reports whether the last fetch failed; the list is hidden then
	Failed() bool
	// VisiblePages returns the page numbers shown in the page bar, without ellipses
	VisiblePages() []int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
