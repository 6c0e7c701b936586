package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "top", "bottom"
}

func (a NavigateAction) Type() string { return "navigate" }

// Page targets for PageAction
const (
	PagePrev  = "prev"
	PageNext  = "next"
	PageFirst = "first"
	PageLast  = "last"
	PageExact = "exact"
)

// PageAction moves the result list to another catalog page
type PageAction struct {
	Target string
	Page   int // used with PageExact
}

func (a PageAction) Type() string { return "page" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// OpenDetailAction shows the selected movie in the pager
type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// RetryAction repeats the last fetch
type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
