package views

import (
	"strings"

	"moviegrip/internal/pagination"
)

// RenderPageBar renders "‹ Prev  1 2 3 … 20  Next ›". Prev and Next are
// dimmed at the bounds; the current page is highlighted.
func (r *Renderer) RenderPageBar(current, total int) string {
	total = max(total, 1)
	current = pagination.Clamp(current, total)

	prev := r.styles.PageDisabled.Render("‹ Prev")
	if pagination.HasPrev(current) {
		prev = r.styles.PageNumber.Render("‹ Prev")
	}
	next := r.styles.PageDisabled.Render("Next ›")
	if pagination.HasNext(current, total) {
		next = r.styles.PageNumber.Render("Next ›")
	}

	markers := pagination.Pages(current, total)
	parts := make([]string, len(markers))
	for i, m := range markers {
		switch {
		case m.IsEllipsis():
			parts[i] = r.styles.Dim.Render(m.String())
		case m.Page == current:
			parts[i] = r.styles.PageCurrent.Render(m.String())
		default:
			parts[i] = r.styles.PageNumber.Render(m.String())
		}
	}

	return prev + "  " + strings.Join(parts, " ") + "  " + next
}
