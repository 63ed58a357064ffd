// Package pager slices in-memory collections into pages.
//
// The requested page is stored verbatim and clamped lazily on every read,
// so a stale page number left over after the backing collection shrinks
// self-heals instead of surfacing a "page 5 of 3" state.
package pager

// Page is the result of paginating a collection: a half-open index range
// [Start, End) into the source slice plus the clamped navigation state.
type Page struct {
	Start       int
	End         int
	CurrentPage int
	TotalPages  int
	TotalItems  int
	PageSize    int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.CurrentPage > 1 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.CurrentPage < p.TotalPages }

// State holds the requested page and page size for a list view.
type State struct {
	page         int
	size         int
	allowedSizes []int
}

// NewState creates pagination state starting at page 1.
// Sizes outside allowedSizes fall back to defaultSize; an empty
// allowedSizes permits any positive size.
func NewState(defaultSize int, allowedSizes []int) *State {
	return &State{
		page:         1,
		size:         defaultSize,
		allowedSizes: allowedSizes,
	}
}

// SetPage stores the requested page verbatim; clamping happens at read time.
func (s *State) SetPage(page int) {
	s.page = page
}

// SetPageSize changes the page size and resets to page 1. Changing the size
// without resetting would show a confusing jump in visible items, so the
// reset is deliberate policy. Unknown sizes are ignored.
func (s *State) SetPageSize(size int) {
	if !s.sizeAllowed(size) {
		return
	}
	s.size = size
	s.page = 1
}

// PageSize returns the current page size.
func (s *State) PageSize() int { return s.size }

// Paginate computes the page for a collection of totalItems elements.
func (s *State) Paginate(totalItems int) Page {
	return Paginate(totalItems, s.page, s.size)
}

func (s *State) sizeAllowed(size int) bool {
	if size <= 0 {
		return false
	}
	if len(s.allowedSizes) == 0 {
		return true
	}
	for _, allowed := range s.allowedSizes {
		if size == allowed {
			return true
		}
	}
	return false
}

// Paginate computes a clamped page over a collection of totalItems elements.
// An empty collection yields a single empty page; the current page is always
// within [1, totalPages]. Never fails: all inputs are sanitized by clamping.
func Paginate(totalItems, page, size int) Page {
	if size <= 0 {
		size = 1
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := (totalItems + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	currentPage := page
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	start := (currentPage - 1) * size
	if start > totalItems {
		start = totalItems
	}
	end := start + size
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Start:       start,
		End:         end,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PageSize:    size,
	}
}
