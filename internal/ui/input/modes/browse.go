package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"moviegrip/internal/ui/input/types"
)

// BrowseMode moves through the result list and its pages
type BrowseMode struct {
	keys types.KeyMap
}

func NewBrowseMode() *BrowseMode {
	return &BrowseMode{keys: types.Keys}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Focus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.Up):
		if ctx.CurrentIndex() == 0 {
			// Moving up past the first row goes back to the search box
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
		}
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PrevPage):
		if ctx.CurrentPage() <= 1 {
			return nil, true
		}
		return []types.Action{types.PageAction{Target: types.PagePrev}}, true

	case key.Matches(msg, m.keys.NextPage):
		if ctx.CurrentPage() >= ctx.TotalPages() {
			return nil, true
		}
		return []types.Action{types.PageAction{Target: types.PageNext}}, true

	case key.Matches(msg, m.keys.FirstPage):
		return []types.Action{types.PageAction{Target: types.PageFirst}}, true

	case key.Matches(msg, m.keys.LastPage):
		return []types.Action{types.PageAction{Target: types.PageLast}}, true

	case key.Matches(msg, m.keys.JumpPage):
		idx := int(msg.String()[0]-'0') - 1
		pages := ctx.VisiblePages()
		if idx < 0 || idx >= len(pages) {
			return nil, true
		}
		return []types.Action{types.PageAction{Target: types.PageExact, Page: pages[idx]}}, true

	case key.Matches(msg, m.keys.Open):
		if ctx.TotalItems() == 0 || ctx.Loading() || ctx.Failed() {
			return nil, true
		}
		return []types.Action{types.OpenDetailAction{}}, true

	case key.Matches(msg, m.keys.Retry):
		return []types.Action{types.RetryAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	switch msg.String() {
	case "g":
		return []types.Action{types.NavigateAction{Direction: "top"}}, true
	case "G":
		return []types.Action{types.NavigateAction{Direction: "bottom"}}, true
	}

	return nil, false
}
