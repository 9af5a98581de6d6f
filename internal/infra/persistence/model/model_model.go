package model

import "time"

// ModelModel mirrors the 'models' table. A row may reference another row in
// the same table through ParentID when it is a variant.
type ModelModel struct {
	ID             uint  `gorm:"primaryKey"`
	ParentID       *uint `gorm:"index"`
	ManufacturerID uint  `gorm:"not null;index"`
	Name           string `gorm:"type:varchar(255);not null"`
	Series         *string `gorm:"type:varchar(255)"`
	Category       string  `gorm:"type:varchar(100);not null"`
	Status         string  `gorm:"type:varchar(50);not null"`
	ReleaseDate    *time.Time
	Rating         *float32 `gorm:"type:decimal(3,1)"`
	Notes          *string  `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Manufacturer *ManufacturerModel `gorm:"foreignKey:ManufacturerID"`
}

// TableName explicitly sets the table name for GORM.
func (ModelModel) TableName() string {
	return "models"
}
