package usecase

import (
	"context"
	"time"

	"hangar/internal/domain/entity"
	"hangar/internal/domain/repository"
)

// ListModelsInput narrows and windows a model listing.
type ListModelsInput struct {
	Search       string
	Manufacturer string
	Series       string
	Category     string
	Status       string
	Page         repository.Page
}

// CreateModelInput carries the fields for a new model.
type CreateModelInput struct {
	ManufacturerID uint       `json:"manufacturer_id" validate:"required"`
	ParentID       *uint      `json:"parent_id"`
	Name           string     `json:"name" validate:"required,max=255"`
	Series         *string    `json:"series" validate:"omitempty,max=255"`
	Category       string     `json:"category" validate:"required,max=100"`
	Status         string     `json:"status" validate:"required,max=50"`
	ReleaseDate    *time.Time `json:"release_date"`
	Rating         *float32   `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Notes          *string    `json:"notes"`
}

// UpdateModelInput is a partial update. Nil fields keep their stored values.
type UpdateModelInput struct {
	ManufacturerID *uint      `json:"manufacturer_id"`
	ParentID       *uint      `json:"parent_id"`
	Name           *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Series         *string    `json:"series" validate:"omitempty,max=255"`
	Category       *string    `json:"category" validate:"omitempty,min=1,max=100"`
	Status         *string    `json:"status" validate:"omitempty,min=1,max=50"`
	ReleaseDate    *time.Time `json:"release_date"`
	Rating         *float32   `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Notes          *string    `json:"notes"`
}

// AddPriceInput carries one observed price point for a model.
type AddPriceInput struct {
	Price     float64   `json:"price" validate:"required,gt=0"`
	PriceDate time.Time `json:"price_date" validate:"required"`
	Source    string    `json:"source" validate:"required,max=255"`
	Notes     *string   `json:"notes"`
}

// ModelUsecase defines the interface for model catalog use cases.
type ModelUsecase interface {
	// List returns one page of models, name ascending, manufacturer included.
	List(ctx context.Context, input ListModelsInput) (*PageResult[entity.Model], error)

	// Get retrieves a single model with its manufacturer.
	Get(ctx context.Context, id uint) (*entity.Model, error)

	// ListVariants returns the direct children of a model, name ascending.
	ListVariants(ctx context.Context, id uint) ([]*entity.Model, error)

	// Create registers a new model.
	Create(ctx context.Context, input CreateModelInput) (*entity.Model, error)

	// Update applies a partial update and returns the updated model.
	Update(ctx context.Context, id uint, input UpdateModelInput) (*entity.Model, error)

	// Delete removes a model.
	Delete(ctx context.Context, id uint) error

	// ListPrices returns one page of a model's price history, newest first.
	ListPrices(ctx context.Context, modelID uint, page repository.Page) (*PageResult[entity.PriceHistory], error)

	// AddPrice appends a price point to a model's history.
	AddPrice(ctx context.Context, modelID uint, input AddPriceInput) (*entity.PriceHistory, error)

	// DeletePrice removes one price point from a model's history.
	DeletePrice(ctx context.Context, modelID, priceID uint) error
}
