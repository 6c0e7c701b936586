package pagination

import "strconv"

// maxFull is the largest page count shown without elision
const maxFull = 7

// Marker is one entry of the page bar: a page number or an ellipsis
type Marker struct {
	Page int // 0 for an ellipsis
}

// Ellipsis marks an elided range of pages
var Ellipsis = Marker{}

// IsEllipsis reports whether the marker stands for elided pages
func (m Marker) IsEllipsis() bool {
	return m.Page == 0
}

func (m Marker) String() string {
	if m.IsEllipsis() {
		return "..."
	}
	return strconv.Itoa(m.Page)
}

// Pages returns the page bar for the current page out of total.
// total below 1 is treated as 1 and current is clamped into [1, total].
func Pages(current, total int) []Marker {
	total = max(total, 1)
	current = Clamp(current, total)

	if total <= maxFull {
		out := make([]Marker, 0, total)
		for p := 1; p <= total; p++ {
			out = append(out, Marker{Page: p})
		}
		return out
	}

	switch {
	case current <= 4:
		return numbers(1, 2, 3, 4, 5, 0, total)
	case current >= total-3:
		return numbers(1, 0, total-4, total-3, total-2, total-1, total)
	default:
		return numbers(1, 0, current-1, current, current+1, 0, total)
	}
}

func numbers(pages ...int) []Marker {
	out := make([]Marker, len(pages))
	for i, p := range pages {
		out[i] = Marker{Page: p}
	}
	return out
}

// Clamp keeps page within [1, total]
func Clamp(page, total int) int {
	total = max(total, 1)
	return min(max(page, 1), total)
}

// HasPrev reports whether a previous page exists
func HasPrev(current int) bool {
	return current > 1
}

// HasNext reports whether a next page exists
func HasNext(current, total int) bool {
	return current < total
}
