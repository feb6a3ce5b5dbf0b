package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campusmarket/internal/domain/access"
	"campusmarket/internal/domain/entity"
)

// OrderListFilter narrows the order listing beyond the access scope
type OrderListFilter struct {
	Status *entity.OrderStatus
	ShopID *int64
}

// SalesSummary aggregates delivered, successfully paid orders over a window
type SalesSummary struct {
	TotalOrders  int64
	TotalRevenue decimal.Decimal
	TopItems     []ItemSales
}

// ItemSales is one row of the top-items ranking
type ItemSales struct {
	ItemName string
	Quantity int64
	Revenue  decimal.Decimal
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// Create persists an order together with all of its lines. Callers
	// that need atomicity with other writes run this inside a
	// TransactionManager callback.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its lines and shop preloaded
	FindByID(ctx context.Context, orderID int64) (*entity.Order, error)

	// FindByIDForUser retrieves an order only when it belongs to the user
	FindByIDForUser(ctx context.Context, orderID int64, userID uuid.UUID) (*entity.Order, error)

	// List retrieves orders visible under the given scope, newest first
	List(ctx context.Context, scope access.Scope, filter OrderListFilter) ([]*entity.Order, error)

	// UpdateStatus sets the order status
	UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error

	// Delete removes an order and its lines
	Delete(ctx context.Context, orderID int64) error

	// SalesSummary aggregates delivered and paid orders created within
	// [from, to), limiting the item ranking to topN entries
	SalesSummary(ctx context.Context, from, to time.Time, shopID *int64, topN int) (*SalesSummary, error)
}
