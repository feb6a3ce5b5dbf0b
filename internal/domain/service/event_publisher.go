package service

import (
	"context"
)

// OrderEvent represents an order lifecycle event pushed to the message queue
type OrderEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	OrderID    int64  `json:"order_id"`
	ShopID     int64  `json:"shop_id"`
	UserID     string `json:"user_id"`
	Status     string `json:"status"`
	TotalPrice string `json:"total_price"`
	OccurredAt string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
