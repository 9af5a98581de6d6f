package model

import "time"

// FavoriteModel mirrors the 'user_model_favorites' table. The composite
// unique index keeps at most one live row per (user, model) pair.
type FavoriteModel struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_favorites_user_model"`
	ModelID   uint    `gorm:"not null;uniqueIndex:idx_favorites_user_model"`
	Notes     *string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "user_model_favorites"
}

// PurchaseModel mirrors the 'user_model_purchases' table.
type PurchaseModel struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_purchases_user_model"`
	ModelID   uint    `gorm:"not null;uniqueIndex:idx_purchases_user_model"`
	Notes     *string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "user_model_purchases"
}
