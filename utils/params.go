package utils

import (
	"net/http"
	"strconv"
	"strings"
)

type QueryOptions struct {
	Page       int
	Limit      int
	Search     string
	Status     string
	Role       string
	CategoryID string
	Resolved   *bool
	IsActive   *bool
	Period     string
}

// ParseQueryOptions reads the common list parameters. Page defaults to 1;
// Limit 0 means "no explicit limit" and the paginator then serves the full
// result set, matching how the dashboard requests unpaged lists.
func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 0 {
		limit = 0
	}

	var resolved *bool
	if s := q.Get("resolved"); s != "" {
		val := s == "true"
		resolved = &val
	}
	var isActive *bool
	if s := q.Get("isActive"); s != "" {
		val := s == "true"
		isActive = &val
	}

	return QueryOptions{
		Page:       page,
		Limit:      limit,
		Search:     q.Get("search"),
		Status:     q.Get("status"),
		Role:       q.Get("role"),
		CategoryID: q.Get("categoryId"),
		Resolved:   resolved,
		IsActive:   isActive,
		Period:     q.Get("period"),
	}
}

// Paginate slices items for the requested page and returns the slice plus
// the pre-slicing total. limit<=0 serves everything (or 10 when the set is
// empty, mirroring the dashboard's default page size).
func Paginate[T any](items []T, page, limit int) ([]T, int) {
	total := len(items)
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		if total > 0 {
			limit = total
		} else {
			limit = 10
		}
	}
	start := (page - 1) * limit
	if start >= total {
		return []T{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], total
}

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}
