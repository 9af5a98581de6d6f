package entity

import "time"

// Model is a single collectible model kit in the catalog. A model may be a
// variant of another model, linked through ParentID.
type Model struct {
	ID             uint       `json:"id"`
	ParentID       *uint      `json:"parent_id"`
	ManufacturerID uint       `json:"manufacturer_id"`
	Name           string     `json:"name"` // Listing sort key.
	Series         *string    `json:"series"`
	Category       string     `json:"category"`
	Status         string     `json:"status"`
	ReleaseDate    *time.Time `json:"release_date"`
	Rating         *float32   `json:"rating"`
	Notes          *string    `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Manufacturer *Manufacturer `json:"manufacturer,omitempty"`
}

// PriceHistory is one observed price point for a model.
type PriceHistory struct {
	ID        uint      `json:"id"`
	ModelID   uint      `json:"model_id"`
	Price     float64   `json:"price"`
	PriceDate time.Time `json:"price_date"`
	Source    string    `json:"source"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
