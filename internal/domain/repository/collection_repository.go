package repository

import (
	"context"

	"hangar/internal/domain/entity"
)

// ToggleState reports which way a toggle went.
type ToggleState string

const (
	// ToggledOn means no row existed and one was inserted.
	ToggledOn ToggleState = "on"
	// ToggledOff means the existing row was deleted.
	ToggledOff ToggleState = "off"
)

// CollectionRepository is the toggle-relation contract: an idempotent
// presence/absence association between a user and a model, represented
// solely by row existence. Favorites and purchases are two instances of the
// same contract over different tables.
//
// Toggle must execute as a single atomic round trip guarded by the store's
// unique (user_id, model_id) constraint; two concurrent togglers must never
// leave duplicate rows. A toggle that loses such a race surfaces as
// ErrConflict rather than silently duplicating.
type CollectionRepository interface {
	// Toggle deletes the (userID, modelID) row if present, otherwise inserts
	// one carrying notes and a fresh created_at. Notes on a deleted row are
	// gone for good; re-toggling starts a new association.
	Toggle(ctx context.Context, userID, modelID uint, notes *string) (ToggleState, error)

	// ListModels returns one page of the models the user has a live row for,
	// name ascending, plus the total count.
	ListModels(ctx context.Context, userID uint, page Page) ([]*entity.Model, int64, error)
}
