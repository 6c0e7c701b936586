package state

import (
	"moviegrip/internal/domain"
)

// AppState contains the UI-only application state. Result pages live in
// the browse orchestrator.
type AppState struct {
	// Search box
	SearchTerm string // raw text, before debouncing

	// Trending strip
	Trending       []domain.TrendingEntry
	TrendingLoaded bool

	// Selection state
	SelectedIndex int // selected row on the current page

	// UI state
	ViewportOffset int // first visible row
	ViewportHeight int // rows available for the result list
	ShowHelp       bool
	InDetail       bool   // the detail pager owns the terminal
	StatusMessage  string // status bar message
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Trending:       make([]domain.TrendingEntry, 0),
		ViewportHeight: 20, // Default
	}
}

// SetTrending replaces the trending list. nil is stored as empty.
func (s *AppState) SetTrending(entries []domain.TrendingEntry) {
	if entries == nil {
		entries = []domain.TrendingEntry{}
	}
	s.Trending = entries
	s.TrendingLoaded = true
}

// ResetSelection moves back to the first row, used when a new page arrives
func (s *AppState) ResetSelection() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// MoveSelection moves the selection by delta within total rows
func (s *AppState) MoveSelection(delta, total int) {
	s.SelectedIndex += delta
	s.ClampSelection(total)
}

// SelectLast moves to the last of total rows
func (s *AppState) SelectLast(total int) {
	s.SelectedIndex = total - 1
	s.ClampSelection(total)
}

// ClampSelection keeps the selection and the viewport inside total rows
func (s *AppState) ClampSelection(total int) {
	if total <= 0 {
		s.SelectedIndex = 0
		s.ViewportOffset = 0
		return
	}
	if s.SelectedIndex >= total {
		s.SelectedIndex = total - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	s.ensureVisible(total)
}

// SetViewportHeight updates the visible row count
func (s *AppState) SetViewportHeight(h, total int) {
	if h < 1 {
		h = 1
	}
	s.ViewportHeight = h
	s.ClampSelection(total)
}

func (s *AppState) ensureVisible(total int) {
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.SelectedIndex - s.ViewportHeight + 1
	}
	maxOffset := total - s.ViewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}
