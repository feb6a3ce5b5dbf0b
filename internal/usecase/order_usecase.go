package usecase

import (
	"context"

	"campusmarket/internal/domain/entity"
)

// CartLineInput is one requested line of a new order. Exactly one of the
// three item ID fields must be set.
type CartLineInput struct {
	FoodItemID        *int64 `json:"food_item,omitempty"`
	ElectronicsItemID *int64 `json:"electronics_item,omitempty"`
	GroceryItemID     *int64 `json:"grocery_item,omitempty"`
	Quantity          int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput represents the input for placing a new order
type CreateOrderInput struct {
	Lines []CartLineInput `json:"order_items" validate:"required,min=1,dive"`
}

// ListOrdersInput narrows the order listing
type ListOrdersInput struct {
	Status *string `json:"status,omitempty"`
	ShopID *int64  `json:"shop_id,omitempty"`
}

// OrderUsecase defines the interface for order management use cases
type OrderUsecase interface {
	// CreateOrder prices the cart and persists the order atomically.
	// The total is computed server side from catalog prices; client
	// supplied amounts are never trusted.
	CreateOrder(ctx context.Context, actor *entity.Actor, input *CreateOrderInput) (*entity.Order, error)

	// ListOrders retrieves the orders the actor is allowed to see
	ListOrders(ctx context.Context, actor *entity.Actor, input *ListOrdersInput) ([]*entity.Order, error)

	// GetOrder retrieves a single order the actor is allowed to see
	GetOrder(ctx context.Context, actor *entity.Actor, orderID int64) (*entity.Order, error)

	// GetOrderStatus retrieves just the status of the actor's own order
	GetOrderStatus(ctx context.Context, actor *entity.Actor, orderID int64) (entity.OrderStatus, error)

	// UpdateStatus sets a new fulfillment status on a visible order
	UpdateStatus(ctx context.Context, actor *entity.Actor, orderID int64, status string) (*entity.Order, error)

	// DeleteOrder removes an order the actor owns or manages
	DeleteOrder(ctx context.Context, actor *entity.Actor, orderID int64) error
}
