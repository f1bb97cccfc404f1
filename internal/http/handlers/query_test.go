package handlers

import (
	"net/http/httptest"
	"testing"

	"dealership/internal/domain"

	"github.com/gin-gonic/gin"
)

func parseFromURL(t *testing.T, rawURL string) domain.ListQuery {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", rawURL, nil)
	return ParseListQuery(c)
}

func TestParseListQueryFull(t *testing.T) {
	q := parseFromURL(t, "/api/colors?pagination[page]=2&pagination[pageSize]=50&filters[name][$containsi]=merah&sort[name]=desc")

	if q.Page != 2 || q.PageSize != 50 {
		t.Fatalf("paging not parsed: %+v", q)
	}
	if q.FilterField != "name" || q.FilterValue != "merah" {
		t.Fatalf("filter not parsed: %+v", q)
	}
	if q.SortField != "name" || q.SortOrder != "desc" {
		t.Fatalf("sort not parsed: %+v", q)
	}
}

func TestParseListQueryDefaults(t *testing.T) {
	q := parseFromURL(t, "/api/colors")

	if q.Page != 1 || q.PageSize != domain.DefaultPageSize {
		t.Fatalf("defaults not applied: %+v", q)
	}
	if q.FilterField != "" || q.SortField != "" {
		t.Fatalf("unexpected filter/sort: %+v", q)
	}
}

func TestParseListQueryInvalidPageSizeFallsBack(t *testing.T) {
	q := parseFromURL(t, "/api/colors?pagination[pageSize]=33")
	if q.PageSize != domain.DefaultPageSize {
		t.Fatalf("invalid page size should fall back, got %d", q.PageSize)
	}
}

func TestParseListQueryEmptyFilterIgnored(t *testing.T) {
	q := parseFromURL(t, "/api/colors?filters[name][$containsi]=")
	if q.FilterField != "" {
		t.Fatalf("empty filter value should be ignored, got %+v", q)
	}
}
