package entity

import "time"

// Manufacturer is a company that produces collectible models.
type Manufacturer struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"` // Unique short name, the listing sort key.
	FullName      *string    `json:"full_name"`
	FoundedDate   *time.Time `json:"founded_date"`
	ParentCompany *string    `json:"parent_company"`
	Country       *string    `json:"country"`
	Website       *string    `json:"website"`
	Description   *string    `json:"description"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
