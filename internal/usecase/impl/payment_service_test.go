package impl

import (
	"context"
	"log/slog"
	"testing"

	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/domain/repository"
	"campusmarket/internal/domain/service"
	mockRepo "campusmarket/internal/mocks/repository"
	mockService "campusmarket/internal/mocks/service"
	"campusmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	paymentRepo *mockRepo.MockPaymentRepository
	gateway     *mockService.MockPaymentGateway
	qrService   *mockService.MockQRCodeService
	publisher   *mockService.MockEventPublisher
}

func newTestPaymentService(t *testing.T) (usecase.PaymentUsecase, *paymentServiceMocks) {
	t.Helper()

	m := &paymentServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		gateway:     mockService.NewMockPaymentGateway(t),
		qrService:   mockService.NewMockQRCodeService(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}

	svc := NewPaymentService(
		m.txManager,
		m.orderRepo,
		m.paymentRepo,
		m.gateway,
		m.qrService,
		m.publisher,
		slog.New(slog.DiscardHandler),
	)

	return svc, m
}

func TestPaymentService_InitiatePayment_Succeeds(t *testing.T) {
	svc, m := newTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.Actor{UserID: userID, Email: "kwame@knust.edu.gh", Role: entity.RoleStudent}

	order := &entity.Order{
		ID:         42,
		UserID:     userID,
		ShopID:     3,
		TotalPrice: decimal.RequireFromString("45.00"),
	}
	m.orderRepo.EXPECT().FindByIDForUser(ctx, int64(42), userID).Return(order, nil)
	m.paymentRepo.EXPECT().HasSuccessfulPayment(ctx, int64(42)).Return(false, nil)

	m.gateway.EXPECT().
		Initialize(ctx, mock.AnythingOfType("*service.InitializeRequest")).
		RunAndReturn(func(_ context.Context, req *service.InitializeRequest) (*service.InitializeResult, error) {
			assert.Equal(t, "kwame@knust.edu.gh", req.Email)
			assert.True(t, decimal.RequireFromString("45.00").Equal(req.Amount))
			assert.Equal(t, entity.MethodMobileMoney, req.Method)
			assert.Equal(t, "0244000000", req.Phone)

			return &service.InitializeResult{
				Reference:        "ref-abc123",
				AuthorizationURL: "https://checkout.paystack.com/ref-abc123",
			}, nil
		})

	m.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(_ context.Context, payment *entity.Payment) {
			assert.Equal(t, int64(42), payment.OrderID)
			assert.Equal(t, entity.PaymentPending, payment.Status)
			assert.Equal(t, "ref-abc123", payment.Reference)
		}).
		Return(nil)

	m.qrService.EXPECT().
		GeneratePaymentQR("https://checkout.paystack.com/ref-abc123").
		Return([]byte("png-bytes"), nil)

	result, err := svc.InitiatePayment(ctx, &actor, &usecase.InitiatePaymentInput{
		OrderID: 42,
		Amount:  "45.00",
		Method:  "momo",
		Email:   "kwame@knust.edu.gh",
		Phone:   "0244000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "ref-abc123", result.Reference)
	assert.Equal(t, "https://checkout.paystack.com/ref-abc123", result.AuthorizationURL)
	assert.NotEmpty(t, result.QRCode)
}

func TestPaymentService_InitiatePayment_AlreadyPaidOrderRejected(t *testing.T) {
	svc, m := newTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.Actor{UserID: userID, Role: entity.RoleStudent}

	order := &entity.Order{
		ID:         42,
		UserID:     userID,
		TotalPrice: decimal.RequireFromString("45.00"),
	}
	m.orderRepo.EXPECT().FindByIDForUser(ctx, int64(42), userID).Return(order, nil)
	m.paymentRepo.EXPECT().HasSuccessfulPayment(ctx, int64(42)).Return(true, nil)

	_, err := svc.InitiatePayment(ctx, &actor, &usecase.InitiatePaymentInput{
		OrderID: 42,
		Amount:  "45.00",
		Method:  "card",
		Email:   "kwame@knust.edu.gh",
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyPaid)
	m.gateway.AssertNotCalled(t, "Initialize")
}

func TestPaymentService_InitiatePayment_AmountMismatch(t *testing.T) {
	svc, m := newTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.Actor{UserID: userID, Role: entity.RoleStudent}

	order := &entity.Order{
		ID:         42,
		UserID:     userID,
		TotalPrice: decimal.RequireFromString("45.00"),
	}
	m.orderRepo.EXPECT().FindByIDForUser(ctx, int64(42), userID).Return(order, nil)

	_, err := svc.InitiatePayment(ctx, &actor, &usecase.InitiatePaymentInput{
		OrderID: 42,
		Amount:  "44.99",
		Method:  "card",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAmountMismatch)
	// The gateway is never contacted when the amount disagrees.
	m.gateway.AssertNotCalled(t, "Initialize")
}

func TestPaymentService_InitiatePayment_InvalidMethod(t *testing.T) {
	svc, _ := newTestPaymentService(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleStudent}

	_, err := svc.InitiatePayment(context.Background(), &actor, &usecase.InitiatePaymentInput{
		OrderID: 42,
		Amount:  "45.00",
		Method:  "cheque",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
}

func TestPaymentService_InitiatePayment_MalformedAmount(t *testing.T) {
	svc, _ := newTestPaymentService(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleStudent}

	_, err := svc.InitiatePayment(context.Background(), &actor, &usecase.InitiatePaymentInput{
		OrderID: 42,
		Amount:  "forty-five",
		Method:  "card",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_InitiatePayment_StrangersOrderNotFound(t *testing.T) {
	svc, m := newTestPaymentService(t)
	ctx := context.Background()
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleStudent}

	m.orderRepo.EXPECT().
		FindByIDForUser(ctx, int64(42), actor.UserID).
		Return(nil, domainerrors.ErrOrderNotFound)

	_, err := svc.InitiatePayment(ctx, &actor, &usecase.InitiatePaymentInput{
		OrderID: 42,
		Amount:  "45.00",
		Method:  "card",
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestPaymentService_InitiatePayment_QRFailureIsNonFatal(t *testing.T) {
	svc, m := newTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.Actor{UserID: userID, Email: "ama@knust.edu.gh", Role: entity.RoleStudent}

	order := &entity.Order{ID: 42, UserID: userID, TotalPrice: decimal.RequireFromString("45.00")}
	m.orderRepo.EXPECT().FindByIDForUser(ctx, int64(42), userID).Return(order, nil)
	m.paymentRepo.EXPECT().HasSuccessfulPayment(ctx, int64(42)).Return(false, nil)
	m.gateway.EXPECT().Initialize(ctx, mock.Anything).Return(&service.InitializeResult{
		Reference:        "ref-abc123",
		AuthorizationURL: "https://checkout.paystack.com/ref-abc123",
	}, nil)
	m.paymentRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.qrService.EXPECT().GeneratePaymentQR(mock.Anything).Return(nil, assert.AnError)

	result, err := svc.InitiatePayment(ctx, &actor, &usecase.InitiatePaymentInput{
		OrderID: 42,
		Amount:  "45.00",
		Method:  "card",
	})
	require.NoError(t, err)
	assert.Empty(t, result.QRCode)
	assert.Equal(t, "ref-abc123", result.Reference)
}

func TestPaymentService_VerifyPayment_ConfirmsSuccess(t *testing.T) {
	svc, m := newTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.Actor{UserID: userID, Role: entity.RoleStudent}

	payment := &entity.Payment{
		ID:        7,
		UserID:    userID,
		OrderID:   42,
		Amount:    decimal.RequireFromString("45.00"),
		Status:    entity.PaymentPending,
		Reference: "ref-abc123",
	}
	m.paymentRepo.EXPECT().FindByReferenceForUser(ctx, "ref-abc123", userID).Return(payment, nil)

	m.gateway.EXPECT().Verify(ctx, "ref-abc123").Return(&service.VerifyResult{
		Reference: "ref-abc123",
		Status:    service.GatewayStatusSuccess,
		Amount:    decimal.RequireFromString("45.00"),
	}, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
	m.factory.EXPECT().NewPaymentRepository().Return(m.paymentRepo)
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo)
	m.paymentRepo.EXPECT().UpdateStatus(ctx, "ref-abc123", entity.PaymentSuccess).Return(nil)
	m.orderRepo.EXPECT().UpdateStatus(ctx, int64(42), entity.StatusReceived).Return(nil)
	m.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	verified, err := svc.VerifyPayment(ctx, &actor, "ref-abc123")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentSuccess, verified.Status)
}

func TestPaymentService_VerifyPayment_AlreadySettledIsIdempotent(t *testing.T) {
	svc, m := newTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.Actor{UserID: userID, Role: entity.RoleStudent}

	payment := &entity.Payment{
		UserID:    userID,
		OrderID:   42,
		Amount:    decimal.RequireFromString("45.00"),
		Status:    entity.PaymentSuccess,
		Reference: "ref-abc123",
	}
	m.paymentRepo.EXPECT().FindByReferenceForUser(ctx, "ref-abc123", userID).Return(payment, nil)

	verified, err := svc.VerifyPayment(ctx, &actor, "ref-abc123")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentSuccess, verified.Status)
	// A settled payment never goes back to the gateway.
	m.gateway.AssertNotCalled(t, "Verify")
}

func TestPaymentService_VerifyPayment_GatewayFailureMarksFailed(t *testing.T) {
	svc, m := newTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.Actor{UserID: userID, Role: entity.RoleStudent}

	payment := &entity.Payment{
		UserID:    userID,
		OrderID:   42,
		Amount:    decimal.RequireFromString("45.00"),
		Status:    entity.PaymentPending,
		Reference: "ref-abc123",
	}
	m.paymentRepo.EXPECT().FindByReferenceForUser(ctx, "ref-abc123", userID).Return(payment, nil)
	m.gateway.EXPECT().Verify(ctx, "ref-abc123").Return(&service.VerifyResult{
		Reference: "ref-abc123",
		Status:    service.GatewayStatusFailed,
	}, nil)
	m.paymentRepo.EXPECT().UpdateStatus(ctx, "ref-abc123", entity.PaymentFailed).Return(nil)

	verified, err := svc.VerifyPayment(ctx, &actor, "ref-abc123")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentFailed, verified.Status)
}

func TestPaymentService_VerifyPayment_SettledAmountMismatch(t *testing.T) {
	svc, m := newTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.Actor{UserID: userID, Role: entity.RoleStudent}

	payment := &entity.Payment{
		UserID:    userID,
		OrderID:   42,
		Amount:    decimal.RequireFromString("45.00"),
		Status:    entity.PaymentPending,
		Reference: "ref-abc123",
	}
	m.paymentRepo.EXPECT().FindByReferenceForUser(ctx, "ref-abc123", userID).Return(payment, nil)
	m.gateway.EXPECT().Verify(ctx, "ref-abc123").Return(&service.VerifyResult{
		Reference: "ref-abc123",
		Status:    service.GatewayStatusSuccess,
		Amount:    decimal.RequireFromString("40.00"),
	}, nil)

	_, err := svc.VerifyPayment(ctx, &actor, "ref-abc123")
	assert.ErrorIs(t, err, domainerrors.ErrAmountMismatch)
	// The payment stays pending for manual reconciliation.
	m.paymentRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestPaymentService_VerifyPayment_UnknownReference(t *testing.T) {
	svc, m := newTestPaymentService(t)
	ctx := context.Background()
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleStudent}

	m.paymentRepo.EXPECT().
		FindByReferenceForUser(ctx, "ref-missing", actor.UserID).
		Return(nil, domainerrors.ErrPaymentNotFound)

	_, err := svc.VerifyPayment(ctx, &actor, "ref-missing")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}
