package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod selects the gateway channel used for a payment attempt.
type PaymentMethod string

const (
	// MethodCard pays by debit or credit card.
	MethodCard PaymentMethod = "card"
	// MethodMobileMoney pays through a mobile money wallet.
	MethodMobileMoney PaymentMethod = "momo"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a supported channel.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCard, MethodMobileMoney:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks one payment attempt through the two-phase confirm
// protocol: pending after gateway initialization, success or failed after
// explicit verification.
type PaymentStatus string

const (
	// PaymentPending means the gateway accepted initialization but the
	// result has not been verified yet.
	PaymentPending PaymentStatus = "pending"
	// PaymentSuccess means the gateway confirmed the charge.
	PaymentSuccess PaymentStatus = "success"
	// PaymentFailed means the gateway reported the charge did not complete.
	PaymentFailed PaymentStatus = "failed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// Payment is one attempt to pay for an order. An order may accumulate
// several attempts across retries; at most one reaches success in normal
// operation.
type Payment struct {
	ID        int64           // Surrogate key assigned by the database.
	UserID    uuid.UUID       // The customer paying.
	OrderID   int64           // The order being paid for.
	Amount    decimal.Decimal // Must equal the order total exactly.
	Method    PaymentMethod   // Gateway channel selection.
	Status    PaymentStatus   // Current stage of this attempt.
	Reference string          // Unique reference issued by the gateway.
	CreatedAt time.Time       // Timestamp of the initialization.
	UpdatedAt time.Time       // Timestamp of the last status change.
}
