// Package paging resolves raw list parameters into a bounded page request and
// carries paged results back to callers.
package paging

import (
	"math"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Request is a resolved page request. Build it with New or FromQuery;
// the zero value is not normalized.
type Request struct {
	Page       int
	PageSize   int
	SearchTerm string
}

// New clamps page and size into range and trims the search term. It never fails.
func New(page, size int, search string) Request {
	if page < 1 {
		page = DefaultPage
	}
	switch {
	case size < 1:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	return Request{
		Page:       page,
		PageSize:   size,
		SearchTerm: strings.TrimSpace(search),
	}
}

// Default is the request used when the caller asked for no paging at all.
func Default() Request {
	return New(DefaultPage, DefaultPageSize, "")
}

// FromQuery builds a Request from optional inputs. It returns nil when page
// and size are absent and search is blank, meaning no paging was requested.
func FromQuery(page, size *int, search string) *Request {
	if page == nil && size == nil && strings.TrimSpace(search) == "" {
		return nil
	}
	p, s := DefaultPage, DefaultPageSize
	if page != nil {
		p = *page
	}
	if size != nil {
		s = *size
	}
	req := New(p, s, search)
	return &req
}

// OrDefault dereferences r, falling back to Default for nil.
func (r *Request) OrDefault() Request {
	if r == nil {
		return Default()
	}
	return New(r.Page, r.PageSize, r.SearchTerm)
}

func (r Request) HasSearch() bool {
	return r.SearchTerm != ""
}

// Offset saturates at math.MaxInt for pages too far out to address.
func (r Request) Offset() int {
	if r.PageSize > 0 && r.Page-1 > math.MaxInt/r.PageSize {
		return math.MaxInt
	}
	return (r.Page - 1) * r.PageSize
}

func (r Request) Limit() int {
	return r.PageSize
}

// Result is one page of items plus the total number of matches before paging.
type Result[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewResult maps src into a Result, always producing a non-nil Items slice.
func NewResult[S, T any](req Request, src []S, total int64, mapFn func(S) T) Result[T] {
	items := make([]T, 0, len(src))
	for _, s := range src {
		items = append(items, mapFn(s))
	}
	return Result[T]{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
}
