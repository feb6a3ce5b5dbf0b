package model

import (
	"time"
)

// ShopModel is the GORM-specific struct for the 'shops' table.
type ShopModel struct {
	ID          int64  `gorm:"primary_key;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"type:varchar(500)"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
