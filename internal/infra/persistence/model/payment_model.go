package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel is the GORM-specific struct for the 'payments' table.
// Reference is the gateway transaction reference; its unique index makes
// repeated initializations of the same gateway reference impossible.
type PaymentModel struct {
	ID        int64           `gorm:"primary_key;autoIncrement"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID   int64           `gorm:"not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Method    string          `gorm:"type:varchar(16);not null"`
	Status    string          `gorm:"type:varchar(16);not null;default:'pending'"`
	Reference string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
