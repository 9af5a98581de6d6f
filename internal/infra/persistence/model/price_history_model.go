package model

import "time"

// PriceHistoryModel mirrors the 'price_history' table.
type PriceHistoryModel struct {
	ID        uint    `gorm:"primaryKey"`
	ModelID   uint    `gorm:"not null;index"`
	Price     float64 `gorm:"type:decimal(10,2);not null"`
	PriceDate time.Time `gorm:"not null"`
	Source    string  `gorm:"type:varchar(255);not null"`
	Notes     *string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PriceHistoryModel) TableName() string {
	return "price_history"
}
