package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"moviegrip/internal/ui/input/types"
)

// SearchMode feeds keys to the search box. Keys it does not claim are
// passed on to the text input by the handler.
type SearchMode struct {
	textInput *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.CursorEnd()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "tab", "down", "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true

	case "esc":
		// Esc clears a non-empty box, otherwise leaves it
		if m.textInput != nil && m.textInput.Value() != "" {
			m.textInput.Reset()
			return []types.Action{types.UpdateTextAction{Text: ""}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true

	default:
		return nil, false
	}
}
