package models

import (
	"net/url"
	"strconv"
)

// Searchable is implemented by records that can be matched by a local text search.
type Searchable interface {
	SearchFields() []string
}

// Page is the canonical list shape every backend envelope is normalized into.
// Page is one-based; Size is the requested page size.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page,omitempty"`
	Size  int   `json:"size,omitempty"`
}

// Pages returns the number of pages of Size needed to show Total items.
func (p Page[T]) Pages() int {
	if p.Size <= 0 || p.Total <= 0 {
		return 1
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// PageRequest is the paginated request convention shared by all list endpoints.
// Page is one-based here; the backend counts pages from zero.
type PageRequest struct {
	Page     int
	Size     int
	FilterBy string
	UserID   int64
	Status   string
}

// Values encodes r as query parameters, omitting zero values.
func (r PageRequest) Values() url.Values {
	v := url.Values{}
	if r.Page > 0 {
		v.Set("page", strconv.Itoa(r.Page-1))
	}
	if r.Size > 0 {
		v.Set("size", strconv.Itoa(r.Size))
	}
	if r.FilterBy != "" {
		v.Set("filterBy", r.FilterBy)
	}
	if r.UserID != 0 {
		v.Set("userId", strconv.FormatInt(r.UserID, 10))
	}
	if r.Status != "" {
		v.Set("status", r.Status)
	}
	return v
}
