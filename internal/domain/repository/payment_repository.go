package repository

import (
	"context"

	"github.com/google/uuid"

	"campusmarket/internal/domain/entity"
)

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	// Create persists a pending payment record. The gateway reference
	// carries a unique constraint; a duplicate surfaces as a conflict.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByReferenceForUser retrieves a payment by gateway reference,
	// restricted to the initiating user
	FindByReferenceForUser(ctx context.Context, reference string, userID uuid.UUID) (*entity.Payment, error)

	// UpdateStatus sets the payment status for a reference
	UpdateStatus(ctx context.Context, reference string, status entity.PaymentStatus) error

	// HasSuccessfulPayment reports whether the order has at least one
	// successful payment
	HasSuccessfulPayment(ctx context.Context, orderID int64) (bool, error)
}
