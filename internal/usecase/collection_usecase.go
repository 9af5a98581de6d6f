package usecase

import (
	"context"

	"hangar/internal/domain/entity"
	"hangar/internal/domain/repository"
)

// ToggleInput carries the optional notes attached when a toggle creates a row.
// Notes sent on a toggle that removes a row are ignored.
type ToggleInput struct {
	Notes *string `json:"notes"`
}

// CollectionUsecase defines the interface for the per-user favorite and
// purchase collections. Both relations behave identically; only the backing
// table differs.
type CollectionUsecase interface {
	// ToggleFavorite flips the favorite state of a model for a user.
	ToggleFavorite(ctx context.Context, userID, modelID uint, input ToggleInput) (repository.ToggleState, error)

	// TogglePurchase flips the purchased state of a model for a user.
	TogglePurchase(ctx context.Context, userID, modelID uint, input ToggleInput) (repository.ToggleState, error)

	// ListFavorites returns one page of the user's favorited models.
	ListFavorites(ctx context.Context, userID uint, page repository.Page) (*PageResult[entity.Model], error)

	// ListPurchases returns one page of the user's purchased models.
	ListPurchases(ctx context.Context, userID uint, page repository.Page) (*PageResult[entity.Model], error)
}
