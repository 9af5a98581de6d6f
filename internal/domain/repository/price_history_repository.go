package repository

import (
	"context"

	"hangar/internal/domain/entity"
)

// PriceHistoryRepository stores observed price points for models.
// Ordering is price_date descending so the newest observation leads.
type PriceHistoryRepository interface {
	// ListByModel returns one page of price points for a model plus the total count.
	ListByModel(ctx context.Context, modelID uint, page Page) ([]*entity.PriceHistory, int64, error)

	// Create persists a new price point and backfills generated fields.
	Create(ctx context.Context, p *entity.PriceHistory) error

	// Delete removes a price point scoped to its model, or returns
	// ErrRecordNotFound. The model scope keeps one model's price IDs from
	// deleting another model's rows.
	Delete(ctx context.Context, modelID, id uint) error
}
