package views

import (
	"fmt"
	"strings"

	"moviegrip/internal/domain"
)

// TrendingRenderer renders the numbered trending strip
type TrendingRenderer struct {
	styles *Styles
}

// NewTrendingRenderer creates a new trending renderer
func NewTrendingRenderer(styles *Styles) *TrendingRenderer {
	return &TrendingRenderer{styles: styles}
}

// Render returns the strip, or "" when there is nothing to show
func (tr *TrendingRenderer) Render(entries []domain.TrendingEntry, width int) string {
	if len(entries) == 0 {
		return ""
	}

	items := make([]string, len(entries))
	for i, e := range entries {
		label := e.Title
		if label == "" {
			label = e.SearchTerm
		}
		items[i] = fmt.Sprintf("%s %s", tr.styles.Rank.Render(fmt.Sprintf("%d", i+1)), label)
	}

	// One line when it fits, otherwise one entry per line
	line := strings.Join(items, "   ")
	if width <= 0 || len([]rune(line)) <= width-4 {
		return line
	}
	return strings.Join(items, "\n")
}
