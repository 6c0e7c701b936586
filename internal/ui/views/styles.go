package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Accent         lipgloss.Style
	Section        lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	SearchBox      lipgloss.Style
	SearchBoxFocus lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Scroll         lipgloss.Style
	Highlight      lipgloss.Style
	SelectionBg    lipgloss.Style
	Rank           lipgloss.Style
	Rating         lipgloss.Style
	Skeleton       lipgloss.Style
	PageCurrent    lipgloss.Style
	PageNumber     lipgloss.Style
	PageDisabled   lipgloss.Style
	StatusError    lipgloss.Style
	StatusLoading  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchBoxFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Rank:          lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		Rating:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Skeleton:      lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		PageCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Underline(true),
		PageNumber:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PageDisabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}
