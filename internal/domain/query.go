package domain

// AllowedPageSizes are the only page sizes the listing screens offer.
var AllowedPageSizes = []int{10, 25, 50, 100}

const DefaultPageSize = 25

// ListQuery is the tuple driving one list request: page window, at most one
// sort key and at most one case-insensitive "contains" filter.
type ListQuery struct {
	Page        int
	PageSize    int
	SortField   string
	SortOrder   string // "asc" | "desc"
	FilterField string
	FilterValue string
}

// Normalize clamps the window to valid values. Unknown page sizes fall back
// to the default instead of erroring, matching what the screens send.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if !validPageSize(q.PageSize) {
		q.PageSize = DefaultPageSize
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = "asc"
	}
	return q
}

// Offset returns the SQL offset for the current window.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

func validPageSize(n int) bool {
	for _, s := range AllowedPageSizes {
		if n == s {
			return true
		}
	}
	return false
}

// Pagination mirrors the list response meta. Counts always come from the
// database, never from the page slice.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// NewPagination derives the meta block for a window over total rows.
func NewPagination(q ListQuery, total int) Pagination {
	pageCount := 0
	if total > 0 {
		pageCount = (total + q.PageSize - 1) / q.PageSize
	}
	return Pagination{
		Page:      q.Page,
		PageSize:  q.PageSize,
		PageCount: pageCount,
		Total:     total,
	}
}
