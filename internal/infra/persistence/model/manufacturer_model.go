package model

import "time"

// ManufacturerModel mirrors the 'manufacturers' table.
type ManufacturerModel struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"type:varchar(100);unique;not null"`
	FullName      *string `gorm:"type:varchar(255)"`
	FoundedDate   *time.Time
	ParentCompany *string `gorm:"type:varchar(255)"`
	Country       *string `gorm:"type:varchar(100)"`
	Website       *string `gorm:"type:varchar(255)"`
	Description   *string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ManufacturerModel) TableName() string {
	return "manufacturers"
}
