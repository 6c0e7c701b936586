package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moviegrip/internal/domain"
)

// ReadyMarker is printed under test so drivers know the first frame is up
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	SearchBox      string // rendered text input
	SearchFocused  bool
	Query          string // committed search term
	ShowTrending   bool
	Trending       []domain.TrendingEntry
	Results        []domain.Movie
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Page           int
	TotalPages     int
	Loading        bool
	Spinner        string
	Err            string
	StatusMessage  string
	HelpView       string
	ShowReady      bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	movieRender *MovieRenderer
	trendRender *TrendingRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		movieRender: NewMovieRenderer(styles),
		trendRender: NewTrendingRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	boxStyle := r.styles.SearchBox
	if state.SearchFocused {
		boxStyle = r.styles.SearchBoxFocus
	}
	boxWidth := state.Width - 8
	if boxWidth < 20 {
		boxWidth = 20
	}
	content.WriteString(boxStyle.Width(boxWidth).Render("🔍 " + state.SearchBox))
	content.WriteString("\n")

	if state.ShowTrending {
		if strip := r.trendRender.Render(state.Trending, state.Width); strip != "" {
			content.WriteString(r.styles.Section.Render("Trending Movies"))
			content.WriteString("\n")
			content.WriteString(strip)
			content.WriteString("\n")
		}
	}

	heading := "All Movies"
	if state.Query != "" {
		heading = fmt.Sprintf("Results for %q", state.Query)
	}
	content.WriteString(r.styles.Section.Render(heading))
	content.WriteString("\n")

	switch {
	case state.Loading:
		content.WriteString(r.movieRender.RenderSkeleton(min(SkeletonRows, max(state.ViewportHeight, 1))))
	case state.Err != "":
		content.WriteString(r.styles.StatusError.Render(state.Err))
	case len(state.Results) == 0:
		content.WriteString(r.styles.Dim.Render("No movies found."))
		content.WriteString("\n\n")
		content.WriteString(r.RenderPageBar(state.Page, state.TotalPages))
	default:
		content.WriteString(r.renderMovieList(state))
		content.WriteString("\n\n")
		content.WriteString(r.RenderPageBar(state.Page, state.TotalPages))
	}

	// Push the footer to the bottom
	footer := r.renderFooter(state)
	currentLines := strings.Count(content.String(), "\n") + 1
	footerLines := strings.Count(footer, "\n") + 1
	availableLines := state.Height - 2 // Main padding
	if availableLines <= 0 {
		availableLines = 22
	}
	if pad := availableLines - currentLines - footerLines; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("movie") + r.styles.Accent.Render("grip")

	right := ""
	if state.Loading {
		right = r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading", state.Spinner))
	} else if state.TotalPages > 0 {
		right = r.styles.Dim.Render(fmt.Sprintf("page %d/%d", state.Page, state.TotalPages))
	}
	if right == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	pad := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if pad < 2 {
		pad = 2
	}
	return logo + strings.Repeat(" ", pad) + right
}

// renderMovieList renders the visible slice of the result list
func (r *Renderer) renderMovieList(state ViewState) string {
	total := len(state.Results)
	height := state.ViewportHeight
	if height <= 0 {
		height = total
	}
	start := min(max(state.ViewportOffset, 0), total)
	end := min(start+height, total)

	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.movieRender.RenderMovie(state.Results[i], i == state.SelectedIndex, state.Width))
	}
	if end < total {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", total-end)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderFooter(state ViewState) string {
	var parts []string
	if state.StatusMessage != "" {
		parts = append(parts, r.styles.Status.Render(state.StatusMessage))
	}
	if state.HelpView != "" {
		parts = append(parts, r.styles.Help.Render(state.HelpView))
	}
	if state.ShowReady {
		parts = append(parts, ReadyMarker)
	}
	return strings.Join(parts, "\n")
}
