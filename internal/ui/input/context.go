package input

import (
	"moviegrip/internal/browse"
	"moviegrip/internal/pagination"
	"moviegrip/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	Browse browse.State
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of movies on the current page
func (c *ModelContext) TotalItems() int {
	if c.Browse.Loading {
		return 0
	}
	return len(c.Browse.Results)
}

func (c *ModelContext) CurrentPage() int {
	return c.Browse.Page
}

func (c *ModelContext) TotalPages() int {
	return c.Browse.TotalPages
}

func (c *ModelContext) Loading() bool {
	return c.Browse.Loading
}

func (c *ModelContext) Failed() bool {
	return c.Browse.Err != ""
}

// VisiblePages returns the numbered markers of the page bar in order
func (c *ModelContext) VisiblePages() []int {
	markers := pagination.Pages(c.Browse.Page, c.Browse.TotalPages)
	pages := make([]int, 0, len(markers))
	for _, m := range markers {
		if !m.IsEllipsis() {
			pages = append(pages, m.Page)
		}
	}
	return pages
}
