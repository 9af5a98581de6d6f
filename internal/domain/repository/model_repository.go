package repository

import (
	"context"

	"hangar/internal/domain/entity"
)

// ModelFilter narrows a model listing.
type ModelFilter struct {
	Search       string // Case-insensitive substring match on model name.
	Manufacturer string // Case-insensitive substring match on manufacturer name.
	Series       string
	Category     string
	Status       string
}

// ModelRepository is the model instantiation of the catalog contract, plus
// the variant lookup (children linked through parent_id).
type ModelRepository interface {
	CatalogRepository[entity.Model, ModelFilter]

	// FindVariants returns the direct children of a model, name ascending.
	FindVariants(ctx context.Context, parentID uint) ([]*entity.Model, error)
}
