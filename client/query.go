package client

import (
	"fmt"
	"net/url"
	"strconv"
	"sync"
)

// AllowedPageSizes are the page sizes a listing may request. Anything else
// falls back to DefaultPageSize.
var AllowedPageSizes = []int{10, 25, 50, 100}

const DefaultPageSize = 25

// QueryState holds the paging, filter and sort state of one listing. Every
// setter except SetPage resets the page to 1 so a changed result set never
// points at a page that no longer exists.
type QueryState struct {
	mu sync.Mutex

	page        int
	pageSize    int
	sortField   string
	sortOrder   string
	filterField string
	filterValue string
}

func NewQueryState() *QueryState {
	return &QueryState{page: 1, pageSize: DefaultPageSize, sortOrder: "asc"}
}

// SetPage moves to the given page without touching filters or sort.
func (q *QueryState) SetPage(page int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if page < 1 {
		page = 1
	}
	q.page = page
}

// SetPageSize changes the page size and resets to page 1. Sizes outside
// AllowedPageSizes fall back to DefaultPageSize.
func (q *QueryState) SetPageSize(size int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pageSize = DefaultPageSize
	for _, s := range AllowedPageSizes {
		if s == size {
			q.pageSize = size
			break
		}
	}
	q.page = 1
}

// SetSort changes the sort column and direction and resets to page 1.
func (q *QueryState) SetSort(field, order string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if order != "desc" {
		order = "asc"
	}
	q.sortField = field
	q.sortOrder = order
	q.page = 1
}

// SetFilter changes the case-insensitive contains filter and resets to
// page 1. An empty value clears the filter.
func (q *QueryState) SetFilter(field, value string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.filterField = field
	q.filterValue = value
	q.page = 1
}

// Page returns the current page (1-based).
func (q *QueryState) Page() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.page
}

// PageSize returns the current page size.
func (q *QueryState) PageSize() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pageSize
}

// Params renders the state as request query parameters.
func (q *QueryState) Params() url.Values {
	q.mu.Lock()
	defer q.mu.Unlock()

	v := url.Values{}
	v.Set("pagination[page]", strconv.Itoa(q.page))
	v.Set("pagination[pageSize]", strconv.Itoa(q.pageSize))
	if q.filterField != "" && q.filterValue != "" {
		v.Set(fmt.Sprintf("filters[%s][$containsi]", q.filterField), q.filterValue)
	}
	if q.sortField != "" {
		v.Set(fmt.Sprintf("sort[%s]", q.sortField), q.sortOrder)
	}
	return v
}

// Key identifies the full query tuple. A listing uses it to discard
// responses that arrive after the state has already moved on.
func (q *QueryState) Key() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return fmt.Sprintf("%d|%d|%s|%s|%s|%s",
		q.page, q.pageSize, q.sortField, q.sortOrder, q.filterField, q.filterValue)
}
