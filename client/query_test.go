package client

import "testing"

func TestSettersResetPage(t *testing.T) {
	q := NewQueryState()
	q.SetPage(4)

	q.SetFilter("name", "avanza")
	if q.Page() != 1 {
		t.Fatalf("SetFilter should reset to page 1, got %d", q.Page())
	}

	q.SetPage(3)
	q.SetSort("name", "desc")
	if q.Page() != 1 {
		t.Fatalf("SetSort should reset to page 1, got %d", q.Page())
	}

	q.SetPage(2)
	q.SetPageSize(50)
	if q.Page() != 1 {
		t.Fatalf("SetPageSize should reset to page 1, got %d", q.Page())
	}
}

func TestSetPageKeepsFilter(t *testing.T) {
	q := NewQueryState()
	q.SetFilter("name", "avanza")
	q.SetPage(3)

	params := q.Params()
	if params.Get("pagination[page]") != "3" {
		t.Fatalf("page not applied: %v", params)
	}
	if params.Get("filters[name][$containsi]") != "avanza" {
		t.Fatalf("filter lost on page change: %v", params)
	}
}

func TestInvalidPageSizeFallsBack(t *testing.T) {
	q := NewQueryState()
	q.SetPageSize(33)
	if q.PageSize() != DefaultPageSize {
		t.Fatalf("invalid page size should fall back to %d, got %d", DefaultPageSize, q.PageSize())
	}
}

func TestParamsOmitEmptyFilterAndSort(t *testing.T) {
	q := NewQueryState()
	params := q.Params()
	if len(params) != 2 {
		t.Fatalf("fresh state should only carry paging params, got %v", params)
	}

	q.SetFilter("name", "")
	if _, ok := q.Params()["filters[name][$containsi]"]; ok {
		t.Fatalf("empty filter value must not be sent")
	}
}

func TestKeyChangesWithState(t *testing.T) {
	q := NewQueryState()
	before := q.Key()
	q.SetFilter("name", "x")
	if q.Key() == before {
		t.Fatalf("key should change when the filter changes")
	}
}
