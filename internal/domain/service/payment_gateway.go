package service

import (
	"context"

	"github.com/shopspring/decimal"

	"campusmarket/internal/domain/entity"
)

// InitializeRequest carries the data needed to open a gateway transaction.
// Phone is the payer's mobile-money wallet; gateways ignore it for card.
type InitializeRequest struct {
	Email  string
	Amount decimal.Decimal
	Method entity.PaymentMethod
	Phone  string
}

// InitializeResult is the gateway's answer to a successful initialization
type InitializeResult struct {
	Reference        string
	AuthorizationURL string
}

// VerifyResult is the gateway's view of a transaction after verification
type VerifyResult struct {
	Reference string
	Status    string
	Amount    decimal.Decimal
}

// Gateway transaction statuses as reported by verification
const (
	GatewayStatusSuccess = "success"
	GatewayStatusFailed  = "failed"
)

// PaymentGateway defines the interface for the external payment provider.
// Implementations translate provider wire formats into these shapes; use
// cases never see raw gateway responses.
type PaymentGateway interface {
	// Initialize opens a transaction and returns the provider reference
	// together with the URL the customer completes payment at
	Initialize(ctx context.Context, req *InitializeRequest) (*InitializeResult, error)

	// Verify fetches the authoritative state of a transaction
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}
