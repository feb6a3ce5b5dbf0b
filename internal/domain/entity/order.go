package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment stage of an order.
type OrderStatus string

const (
	// StatusReceived is the initial status assigned at creation and
	// re-asserted when a payment is confirmed.
	StatusReceived OrderStatus = "RECEIVED"
	// StatusPreparing indicates the shop is working on the order.
	StatusPreparing OrderStatus = "PREPARING"
	// StatusOutForDelivery indicates the order has left the shop.
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	// StatusDelivered indicates the order reached the customer.
	StatusDelivered OrderStatus = "DELIVERED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is one of the four fulfillment stages.
// Staff may set any valid status in any order; transitions are deliberately
// not restricted to forward-only.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusReceived, StatusPreparing, StatusOutForDelivery, StatusDelivered:
		return true
	default:
		return false
	}
}

// Order is a priced, persisted purchase from exactly one shop. The total is
// frozen at creation time and never independently edited.
type Order struct {
	ID         int64           // Surrogate key assigned by the database.
	UserID     uuid.UUID       // The customer who placed the order.
	ShopID     int64           // Owning shop, derived from the cart's items.
	Shop       *Shop           // Loaded shop record, nil when not preloaded.
	Status     OrderStatus     // Current fulfillment stage.
	TotalPrice decimal.Decimal // Sum of line prices plus delivery fee, 2-dp.
	Items      []*OrderItem    // Line items; the order exclusively owns them.
	CreatedAt  time.Time       // Timestamp of when the order was placed.
}

// OrderItem is one priced line of an order. The price and item name are
// snapshots taken at creation time and are never recomputed from the
// catalog, which may change afterwards.
type OrderItem struct {
	ID       int64           // Surrogate key assigned by the database.
	OrderID  int64           // Owning order.
	Ref      ItemRef         // The catalog item this line was priced from.
	ItemName string          // Item name snapshot at creation time.
	Quantity int             // Positive number of units.
	Price    decimal.Decimal // Frozen line price: unit price x quantity, 2-dp.
}

// CartLine is one requested line of a not-yet-priced cart.
type CartLine struct {
	Ref      ItemRef
	Quantity int
}
