package repository

import (
	"context"
	"errors"
)

// ErrRecordNotFound is returned by any catalog repository when the requested
// row does not exist. Callers translate it into a resource-specific domain error.
var ErrRecordNotFound = errors.New("record not found")

// CatalogRepository is the capability set shared by every resource-backed
// service: paginated listing plus CRUD. It is deliberately resource-agnostic;
// one instantiation exists per stored entity type and no implementation may
// special-case a resource kind.
//
// List must apply a deterministic ordering (name ascending is the catalog
// convention) so page boundaries are stable across calls absent writes, and
// must normalize the page window before querying. Update persists the full
// entity; merge-from-partial happens in the use case against a fresh fetch.
type CatalogRepository[T any, F any] interface {
	// List returns one page of entities matching the filter plus the total
	// match count before windowing.
	List(ctx context.Context, filter F, page Page) ([]*T, int64, error)

	// FindByID retrieves a single entity, or ErrRecordNotFound.
	FindByID(ctx context.Context, id uint) (*T, error)

	// Create persists a new entity and backfills generated fields.
	Create(ctx context.Context, e *T) error

	// Update persists the given entity state over the stored row.
	Update(ctx context.Context, e *T) error

	// Delete removes the entity, or returns ErrRecordNotFound.
	Delete(ctx context.Context, id uint) error
}
