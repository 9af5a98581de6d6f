package usecase

import (
	"context"
	"time"

	"hangar/internal/domain/entity"
	"hangar/internal/domain/repository"
)

// ListManufacturersInput narrows and windows a manufacturer listing.
type ListManufacturersInput struct {
	Search  string
	Country string
	Page    repository.Page
}

// CreateManufacturerInput carries the fields for a new manufacturer.
type CreateManufacturerInput struct {
	Name          string     `json:"name" validate:"required,max=100"`
	FullName      *string    `json:"full_name" validate:"omitempty,max=255"`
	FoundedDate   *time.Time `json:"founded_date"`
	ParentCompany *string    `json:"parent_company" validate:"omitempty,max=255"`
	Country       *string    `json:"country" validate:"omitempty,max=100"`
	Website       *string    `json:"website" validate:"omitempty,url,max=255"`
	Description   *string    `json:"description"`
}

// UpdateManufacturerInput is a partial update. Nil fields keep their stored
// values; non-nil fields replace them.
type UpdateManufacturerInput struct {
	Name          *string    `json:"name" validate:"omitempty,min=1,max=100"`
	FullName      *string    `json:"full_name" validate:"omitempty,max=255"`
	FoundedDate   *time.Time `json:"founded_date"`
	ParentCompany *string    `json:"parent_company" validate:"omitempty,max=255"`
	Country       *string    `json:"country" validate:"omitempty,max=100"`
	Website       *string    `json:"website" validate:"omitempty,url,max=255"`
	Description   *string    `json:"description"`
}

// ManufacturerUsecase defines the interface for manufacturer catalog use cases.
type ManufacturerUsecase interface {
	// List returns one page of manufacturers, name ascending.
	List(ctx context.Context, input ListManufacturersInput) (*PageResult[entity.Manufacturer], error)

	// Get retrieves a single manufacturer.
	Get(ctx context.Context, id uint) (*entity.Manufacturer, error)

	// Create registers a new manufacturer.
	Create(ctx context.Context, input CreateManufacturerInput) (*entity.Manufacturer, error)

	// Update applies a partial update and returns the updated manufacturer.
	Update(ctx context.Context, id uint, input UpdateManufacturerInput) (*entity.Manufacturer, error)

	// Delete removes a manufacturer.
	Delete(ctx context.Context, id uint) error
}
