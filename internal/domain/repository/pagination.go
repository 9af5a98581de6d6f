// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// Page is the request window over an ordered result set.
type Page struct {
	Page    int
	PerPage int
}

// DefaultPerPage is used when a caller does not send per_page at all.
const DefaultPerPage = 20

// Normalized clamps both fields to a minimum of 1. Zero or negative values
// would otherwise produce a division by zero in the page-count arithmetic or
// a negative OFFSET in the query.
func (p Page) Normalized() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 1
	}

	return p
}

// Offset returns the row offset of the window. Call on a normalized Page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.PerPage
}
