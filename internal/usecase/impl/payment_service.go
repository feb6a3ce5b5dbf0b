package impl

import (
	"context"
	"log/slog"
	"time"

	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/domain/repository"
	"campusmarket/internal/domain/service"
	"campusmarket/internal/usecase"

	"github.com/shopspring/decimal"
)

type paymentService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	gateway     service.PaymentGateway
	qrService   service.QRCodeService
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	gateway service.PaymentGateway,
	qrService service.QRCodeService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   txManager,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		qrService:   qrService,
		publisher:   publisher,
		logger:      logger,
	}
}

// InitiatePayment validates the amount against the order and opens a
// gateway transaction.
func (s *paymentService) InitiatePayment(ctx context.Context, actor *entity.Actor, input *usecase.InitiatePaymentInput) (*usecase.InitiatePaymentResult, error) {
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be a decimal string")
	}

	method := entity.PaymentMethod(input.Method)
	if !method.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	// Ownership check: only the customer who placed the order may pay it.
	order, err := s.orderRepo.FindByIDForUser(ctx, input.OrderID, actor.UserID)
	if err != nil {
		return nil, err
	}

	// The client restates what it believes it owes; any drift from the
	// frozen order total aborts before the gateway is contacted.
	if !amount.Equal(order.TotalPrice) {
		return nil, domainerrors.ErrAmountMismatch
	}

	// A settled order is never charged twice.
	paid, err := s.paymentRepo.HasSuccessfulPayment(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if paid {
		return nil, domainerrors.ErrOrderAlreadyPaid
	}

	// Receipts go to the address the payer supplied, falling back to the
	// account email on the token.
	email := input.Email
	if email == "" {
		email = actor.Email
	}

	initResult, err := s.gateway.Initialize(ctx, &service.InitializeRequest{
		Email:  email,
		Amount: amount,
		Method: method,
		Phone:  input.Phone,
	})
	if err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		UserID:    actor.UserID,
		OrderID:   order.ID,
		Amount:    amount,
		Method:    method,
		Status:    entity.PaymentPending,
		Reference: initResult.Reference,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	result := &usecase.InitiatePaymentResult{
		Reference:        initResult.Reference,
		AuthorizationURL: initResult.AuthorizationURL,
	}

	// The QR code is a convenience rendering of the checkout URL; failing
	// to draw it never fails the initiation.
	if qr, err := s.qrService.GeneratePaymentQR(initResult.AuthorizationURL); err == nil {
		result.QRCode = qr
	} else {
		s.logger.Warn("Failed to generate payment QR code",
			slog.String("reference", initResult.Reference),
			slog.String("error", err.Error()),
		)
	}

	return result, nil
}

// VerifyPayment reconciles the local payment with the gateway's view.
func (s *paymentService) VerifyPayment(ctx context.Context, actor *entity.Actor, reference string) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindByReferenceForUser(ctx, reference, actor.UserID)
	if err != nil {
		return nil, err
	}

	// A settled payment is never re-verified or downgraded.
	if payment.Status == entity.PaymentSuccess {
		return payment, nil
	}

	verified, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}

	if verified.Status != service.GatewayStatusSuccess {
		if err := s.paymentRepo.UpdateStatus(ctx, reference, entity.PaymentFailed); err != nil {
			return nil, err
		}
		payment.Status = entity.PaymentFailed

		return payment, nil
	}

	// The gateway settled a different amount than we recorded. Leave the
	// payment pending for manual reconciliation rather than confirming it.
	if !verified.Amount.Equal(payment.Amount) {
		s.logger.Error("Gateway settled amount differs from recorded payment",
			slog.String("reference", reference),
			slog.String("recorded", payment.Amount.StringFixed(2)),
			slog.String("settled", verified.Amount.StringFixed(2)),
		)

		return nil, domainerrors.ErrAmountMismatch
	}

	// Confirm the payment and re-assert the order's initial fulfillment
	// status in one transaction.
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewPaymentRepository().UpdateStatus(ctx, reference, entity.PaymentSuccess); err != nil {
			return err
		}

		return factory.NewOrderRepository().UpdateStatus(ctx, payment.OrderID, entity.StatusReceived)
	})
	if err != nil {
		return nil, err
	}
	payment.Status = entity.PaymentSuccess

	s.publishPaymentEvent(ctx, payment)

	return payment, nil
}

func (s *paymentService) publishPaymentEvent(ctx context.Context, payment *entity.Payment) {
	event := &service.OrderEvent{
		OrderID:    payment.OrderID,
		UserID:     payment.UserID.String(),
		Status:     entity.StatusReceived.String(),
		TotalPrice: payment.Amount.StringFixed(2),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish payment event",
			slog.Int64("order_id", payment.OrderID),
			slog.String("error", err.Error()),
		)
	}
}
