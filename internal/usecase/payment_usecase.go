package usecase

import (
	"context"

	"campusmarket/internal/domain/entity"
)

// InitiatePaymentInput represents the input for starting a payment.
// Amount is the client's belief of what it owes; it must equal the order
// total exactly or initiation is rejected. Email receives the gateway
// receipt; Phone is the mobile-money wallet and only meaningful for momo.
type InitiatePaymentInput struct {
	OrderID int64  `json:"order_id" validate:"required,gt=0"`
	Amount  string `json:"amount" validate:"required"`
	Method  string `json:"payment_method" validate:"required,oneof=card momo"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty"`
}

// InitiatePaymentResult carries everything the client needs to complete
// checkout at the gateway
type InitiatePaymentResult struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	QRCode           []byte `json:"qr_code,omitempty"`
}

// PaymentUsecase defines the interface for payment reconciliation use cases
type PaymentUsecase interface {
	// InitiatePayment validates the amount against the order and opens a
	// gateway transaction, recording a pending payment
	InitiatePayment(ctx context.Context, actor *entity.Actor, input *InitiatePaymentInput) (*InitiatePaymentResult, error)

	// VerifyPayment asks the gateway for the authoritative transaction
	// state and reconciles the local payment and order records.
	// Verification is idempotent; repeating it never downgrades a
	// settled payment.
	VerifyPayment(ctx context.Context, actor *entity.Actor, reference string) (*entity.Payment, error)
}
