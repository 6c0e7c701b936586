package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moviegrip/internal/domain"
)

// SkeletonRows is the number of placeholder rows shown while a page loads
const SkeletonRows = 20

// MovieRenderer renders result rows
type MovieRenderer struct {
	styles *Styles
}

// NewMovieRenderer creates a new movie renderer
func NewMovieRenderer(styles *Styles) *MovieRenderer {
	return &MovieRenderer{styles: styles}
}

// FormatRating renders a vote average with one decimal, or "N/A" when unrated
func FormatRating(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", v)
}

// FormatYear returns the release year or "N/A"
func FormatYear(m domain.Movie) string {
	if y := m.Year(); y != "" {
		return y
	}
	return "N/A"
}

// FormatLanguage upper-cases the original language code
func FormatLanguage(lang string) string {
	if lang == "" {
		return "??"
	}
	return strings.ToUpper(lang)
}

// RenderMovie renders a single result row
func (mr *MovieRenderer) RenderMovie(m domain.Movie, isSelected bool, width int) string {
	indicator := "  "
	if isSelected {
		indicator = mr.styles.Highlight.Render("▸ ")
	}

	title := m.Title
	if title == "" {
		title = m.OriginalTitle
	}

	meta := fmt.Sprintf("%s %s • %s • %s",
		mr.styles.Rating.Render("★"),
		FormatRating(m.VoteAverage),
		FormatLanguage(m.OriginalLanguage),
		FormatYear(m),
	)

	// Truncate long titles so the meta column stays on the line
	maxTitle := width - lipgloss.Width(meta) - 10
	if maxTitle > 3 && lipgloss.Width(title) > maxTitle {
		title = truncate(title, maxTitle)
	}

	line := fmt.Sprintf("%s%s  %s", indicator, title, meta)
	if isSelected {
		return mr.styles.SelectionBg.Render(line)
	}
	return line
}

// RenderSkeleton renders n placeholder rows
func (mr *MovieRenderer) RenderSkeleton(n int) string {
	if n <= 0 {
		return ""
	}
	widths := []int{18, 26, 14, 22, 30, 16, 24}
	lines := make([]string, n)
	for i := range lines {
		bar := strings.Repeat("░", widths[i%len(widths)])
		lines[i] = "  " + mr.styles.Skeleton.Render(bar+"  ░ ░░░ • ░░ • ░░░░")
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
