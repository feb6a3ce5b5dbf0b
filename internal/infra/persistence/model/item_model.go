package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FoodItemModel is the GORM-specific struct for the 'food_items' table.
// Food rows carry the extras column the other catalogs do not have.
type FoodItemModel struct {
	ID        int64           `gorm:"primary_key;autoIncrement"`
	ShopID    *int64          `gorm:"index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image     string          `gorm:"type:varchar(500)"`
	Available bool            `gorm:"not null;default:true"`
	Extras    string          `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (FoodItemModel) TableName() string {
	return "food_items"
}

// ElectronicsItemModel is the GORM-specific struct for the 'electronics_items' table.
type ElectronicsItemModel struct {
	ID        int64           `gorm:"primary_key;autoIncrement"`
	ShopID    *int64          `gorm:"index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image     string          `gorm:"type:varchar(500)"`
	Available bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ElectronicsItemModel) TableName() string {
	return "electronics_items"
}

// GroceryItemModel is the GORM-specific struct for the 'grocery_items' table.
type GroceryItemModel struct {
	ID        int64           `gorm:"primary_key;autoIncrement"`
	ShopID    *int64          `gorm:"index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image     string          `gorm:"type:varchar(500)"`
	Available bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (GroceryItemModel) TableName() string {
	return "grocery_items"
}
