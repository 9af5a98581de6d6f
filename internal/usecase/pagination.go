// Package usecase defines the application's use case interfaces and their
// input/output types. Handlers depend on these interfaces, never on the
// concrete services in impl.
package usecase

import "hangar/internal/domain/repository"

// PageResult is one window over an ordered listing plus the arithmetic the
// client needs to render a pager.
type PageResult[T any] struct {
	Items      []*T  `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResult assembles a PageResult from a repository page. TotalPages is
// ceil(total/perPage); zero matches yield zero pages, and the echoed window
// is the normalized one actually queried.
func NewPageResult[T any](items []*T, total int64, page repository.Page) *PageResult[T] {
	page = page.Normalized()
	if items == nil {
		items = []*T{}
	}

	return &PageResult[T]{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: int((total + int64(page.PerPage) - 1) / int64(page.PerPage)),
	}
}
