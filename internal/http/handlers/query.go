package handlers

import (
	"strconv"
	"strings"

	"dealership/internal/domain"

	"github.com/gin-gonic/gin"
)

// ParseListQuery reads the list contract off the query string:
//
//	pagination[page]=2&pagination[pageSize]=25
//	filters[name][$containsi]=avanza
//	sort[name]=desc
//
// One filter, one sort key. Field whitelisting happens in the repository
// against the resource schema.
func ParseListQuery(c *gin.Context) domain.ListQuery {
	q := domain.ListQuery{}

	if v := strings.TrimSpace(c.Query("pagination[page]")); v != "" {
		q.Page, _ = strconv.Atoi(v)
	}
	if v := strings.TrimSpace(c.Query("pagination[pageSize]")); v != "" {
		q.PageSize, _ = strconv.Atoi(v)
	}

	for key, vals := range c.Request.URL.Query() {
		if len(vals) == 0 {
			continue
		}
		if field, ok := filterField(key); ok {
			val := strings.TrimSpace(vals[0])
			if val != "" {
				q.FilterField = field
				q.FilterValue = val
			}
			continue
		}
		if field, ok := sortField(key); ok {
			q.SortField = field
			q.SortOrder = strings.ToLower(strings.TrimSpace(vals[0]))
		}
	}

	return q.Normalize()
}

func filterField(key string) (string, bool) {
	if !strings.HasPrefix(key, "filters[") || !strings.HasSuffix(key, "][$containsi]") {
		return "", false
	}
	field := strings.TrimSuffix(strings.TrimPrefix(key, "filters["), "][$containsi]")
	if field == "" || strings.ContainsAny(field, "[]") {
		return "", false
	}
	return field, true
}

func sortField(key string) (string, bool) {
	if !strings.HasPrefix(key, "sort[") || !strings.HasSuffix(key, "]") {
		return "", false
	}
	field := strings.TrimSuffix(strings.TrimPrefix(key, "sort["), "]")
	if field == "" || strings.ContainsAny(field, "[]") {
		return "", false
	}
	return field, true
}
