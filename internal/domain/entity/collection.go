package entity

import "time"

// CollectionEntry is a live (user, model) association row. The existence of
// the row IS the state: a user favorites or owns a model exactly when a row
// exists for the pair. Rows are never updated in place; toggling off deletes
// the row and a later toggle on inserts a fresh one, so Notes and CreatedAt
// always describe the current association only.
type CollectionEntry struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ModelID   uint      `json:"model_id"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
