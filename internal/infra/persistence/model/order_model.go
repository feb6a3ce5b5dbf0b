package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID         int64           `gorm:"primary_key;autoIncrement"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShopID     int64           `gorm:"not null;index"`
	Shop       *ShopModel      `gorm:"foreignKey:ShopID"`
	Status     string          `gorm:"type:varchar(32);not null;default:'RECEIVED';index"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Items      []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time       `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Exactly one of the three item foreign keys is set per row. ItemName and
// Price are snapshots taken at checkout so later catalog edits never
// rewrite order history.
type OrderItemModel struct {
	ID                int64           `gorm:"primary_key;autoIncrement"`
	OrderID           int64           `gorm:"not null;index"`
	FoodItemID        *int64          `gorm:"index"`
	ElectronicsItemID *int64          `gorm:"index"`
	GroceryItemID     *int64          `gorm:"index"`
	ItemName          string          `gorm:"type:varchar(255);not null"`
	Quantity          int             `gorm:"not null"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
