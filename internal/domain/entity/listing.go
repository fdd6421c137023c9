package entity

import (
	"math"
	"strings"
)

// SortOrder is the direction of a listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPage      = 1
	DefaultLimit     = 10
	MaxLimit         = 100
	DefaultSortField = "created_at"
)

// ListQuery carries the search, sort and page window of a listing request.
// Zero values select the defaults.
type ListQuery struct {
	Search    string    `json:"search,omitempty"`
	SortBy    string    `json:"sort_by"`
	SortOrder SortOrder `json:"sort_order"`
	Page      int       `json:"page"`
	Limit     int       `json:"limit"`
}

// WithDefaults fills unset fields.
func (q ListQuery) WithDefaults() ListQuery {
	q.Search = strings.TrimSpace(q.Search)
	q.SortBy = strings.TrimSpace(q.SortBy)
	if q.SortBy == "" {
		q.SortBy = DefaultSortField
	}
	q.SortOrder = SortOrder(strings.ToLower(strings.TrimSpace(string(q.SortOrder))))
	if q.SortOrder == "" {
		q.SortOrder = SortDesc
	}
	if q.Page == 0 {
		q.Page = DefaultPage
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}

	return q
}

// Offset is the number of rows skipped before the page. It saturates at
// math.MaxInt64 instead of overflowing for absurd page numbers, which then
// simply lie past the last row.
func (q ListQuery) Offset() int64 {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	skipped := int64(q.Page - 1)
	if skipped > math.MaxInt64/int64(q.Limit) {
		return math.MaxInt64
	}

	return skipped * int64(q.Limit)
}

// HasNext reports whether rows remain after the page out of total.
func (q ListQuery) HasNext(total int64) bool {
	offset := q.Offset()

	return offset < total && total-offset > int64(q.Limit)
}

// Descending reports whether the sort runs newest or largest first.
func (q ListQuery) Descending() bool {
	return q.SortOrder != SortAsc
}

// Page is one window of a listing together with its paging envelope.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// NewPage builds the envelope for items fetched with q.
func NewPage[T any](items []T, total int64, q ListQuery) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items:       items,
		Total:       total,
		Page:        q.Page,
		Limit:       q.Limit,
		HasNext:     q.HasNext(total),
		HasPrevious: q.Page > 1,
	}
}

// MapPage converts page items while keeping the envelope.
func MapPage[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}

	return &Page[U]{
		Items:       items,
		Total:       p.Total,
		Page:        p.Page,
		Limit:       p.Limit,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}
