package impl

import (
	"context"
	"log/slog"
	"testing"

	"campusmarket/config"
	"campusmarket/internal/domain/access"
	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/domain/repository"
	mockRepo "campusmarket/internal/mocks/repository"
	mockService "campusmarket/internal/mocks/service"
	"campusmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func testOrderingConfig() *config.Config {
	return &config.Config{
		Ordering: &config.OrderingConfig{
			DeliveryFee:           decimal.RequireFromString("5.00"),
			FreeDeliveryThreshold: decimal.RequireFromString("150.00"),
		},
	}
}

type orderServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	catalogRepo *mockRepo.MockCatalogRepository
	publisher   *mockService.MockEventPublisher
}

func newTestOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	t.Helper()

	m := &orderServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}

	service := NewOrderService(m.txManager, m.orderRepo, m.publisher, testOrderingConfig(), slog.New(slog.DiscardHandler))

	return service, m
}

// passThroughTx makes the transaction manager run the callback against the
// mocked factory.
func passThroughTx(ctx context.Context, m *orderServiceMocks) {
	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func TestOrderService_CreateOrder_AddsDeliveryFee(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.StudentActor(userID)

	burger := &entity.Item{
		Kind:      entity.KindFood,
		ID:        7,
		ShopID:    int64Ptr(3),
		Name:      "Burger",
		Price:     decimal.RequireFromString("20.00"),
		Available: true,
	}

	passThroughTx(ctx, m)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo)

	m.catalogRepo.EXPECT().
		GetItems(ctx, mock.AnythingOfType("[]entity.ItemRef")).
		Return([]*entity.Item{burger}, nil)

	m.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = 42
		}).
		Return(nil)

	m.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := service.CreateOrder(ctx, &actor, &usecase.CreateOrderInput{
		Lines: []usecase.CartLineInput{
			{FoodItemID: int64Ptr(7), Quantity: 2},
		},
	})
	require.NoError(t, err)

	// 20.00 x 2 = 40.00, plus the 5.00 delivery fee.
	assert.True(t, decimal.RequireFromString("45.00").Equal(order.TotalPrice), "got %s", order.TotalPrice)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, int64(3), order.ShopID)
	assert.Equal(t, entity.StatusReceived, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Burger", order.Items[0].ItemName)
	assert.True(t, decimal.RequireFromString("40.00").Equal(order.Items[0].Price))
}

func TestOrderService_CreateOrder_NoFeeAboveThreshold(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	actor := entity.StudentActor(uuid.New())

	laptop := &entity.Item{
		Kind:      entity.KindElectronics,
		ID:        11,
		ShopID:    int64Ptr(3),
		Name:      "Laptop",
		Price:     decimal.RequireFromString("200.00"),
		Available: true,
	}

	passThroughTx(ctx, m)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo)
	m.catalogRepo.EXPECT().GetItems(ctx, mock.Anything).Return([]*entity.Item{laptop}, nil)
	m.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := service.CreateOrder(ctx, &actor, &usecase.CreateOrderInput{
		Lines: []usecase.CartLineInput{
			{ElectronicsItemID: int64Ptr(11), Quantity: 1},
		},
	})
	require.NoError(t, err)

	// Above the 150.00 threshold no delivery fee applies.
	assert.True(t, decimal.RequireFromString("200.00").Equal(order.TotalPrice), "got %s", order.TotalPrice)
}

func TestOrderService_CreateOrder_FeeAtExactThreshold(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	actor := entity.StudentActor(uuid.New())

	bundle := &entity.Item{
		Kind:      entity.KindGrocery,
		ID:        4,
		ShopID:    int64Ptr(3),
		Name:      "Pantry bundle",
		Price:     decimal.RequireFromString("150.00"),
		Available: true,
	}

	passThroughTx(ctx, m)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo)
	m.catalogRepo.EXPECT().GetItems(ctx, mock.Anything).Return([]*entity.Item{bundle}, nil)
	m.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := service.CreateOrder(ctx, &actor, &usecase.CreateOrderInput{
		Lines: []usecase.CartLineInput{
			{GroceryItemID: int64Ptr(4), Quantity: 1},
		},
	})
	require.NoError(t, err)

	// At exactly the threshold the fee still applies.
	assert.True(t, decimal.RequireFromString("155.00").Equal(order.TotalPrice), "got %s", order.TotalPrice)
}

func TestOrderService_CreateOrder_RoundsHalfUpPerLine(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	actor := entity.StudentActor(uuid.New())

	snack := &entity.Item{
		Kind:      entity.KindFood,
		ID:        9,
		ShopID:    int64Ptr(3),
		Name:      "Snack",
		Price:     decimal.RequireFromString("3.335"),
		Available: true,
	}

	passThroughTx(ctx, m)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo)
	m.catalogRepo.EXPECT().GetItems(ctx, mock.Anything).Return([]*entity.Item{snack}, nil)
	m.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := service.CreateOrder(ctx, &actor, &usecase.CreateOrderInput{
		Lines: []usecase.CartLineInput{
			{FoodItemID: int64Ptr(9), Quantity: 3},
		},
	})
	require.NoError(t, err)

	// 3.335 x 3 = 10.005, rounded half up to 10.01, plus the 5.00 fee.
	assert.True(t, decimal.RequireFromString("15.01").Equal(order.TotalPrice), "got %s", order.TotalPrice)
	assert.True(t, decimal.RequireFromString("10.01").Equal(order.Items[0].Price))
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	service, _ := newTestOrderService(t)
	actor := entity.StudentActor(uuid.New())

	_, err := service.CreateOrder(context.Background(), &actor, &usecase.CreateOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_CreateOrder_InvalidLine(t *testing.T) {
	service, _ := newTestOrderService(t)
	actor := entity.StudentActor(uuid.New())

	tests := []struct {
		name string
		line usecase.CartLineInput
	}{
		{"no item reference", usecase.CartLineInput{Quantity: 1}},
		{"two item references", usecase.CartLineInput{FoodItemID: int64Ptr(1), GroceryItemID: int64Ptr(2), Quantity: 1}},
		{"zero quantity", usecase.CartLineInput{FoodItemID: int64Ptr(1), Quantity: 0}},
		{"negative quantity", usecase.CartLineInput{FoodItemID: int64Ptr(1), Quantity: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateOrder(context.Background(), &actor, &usecase.CreateOrderInput{
				Lines: []usecase.CartLineInput{tt.line},
			})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidLine)
		})
	}
}

func TestOrderService_CreateOrder_MixedShopCart(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	actor := entity.StudentActor(uuid.New())

	items := []*entity.Item{
		{Kind: entity.KindFood, ID: 1, ShopID: int64Ptr(3), Name: "Burger", Price: decimal.RequireFromString("20.00"), Available: true},
		{Kind: entity.KindFood, ID: 2, ShopID: int64Ptr(8), Name: "Pizza", Price: decimal.RequireFromString("30.00"), Available: true},
	}

	passThroughTx(ctx, m)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.catalogRepo.EXPECT().GetItems(ctx, mock.Anything).Return(items, nil)

	_, err := service.CreateOrder(ctx, &actor, &usecase.CreateOrderInput{
		Lines: []usecase.CartLineInput{
			{FoodItemID: int64Ptr(1), Quantity: 1},
			{FoodItemID: int64Ptr(2), Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrMixedShopCart)
	// No order row is written when pricing fails.
	m.orderRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_CreateOrder_UnavailableItem(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	actor := entity.StudentActor(uuid.New())

	soldOut := &entity.Item{
		Kind:      entity.KindFood,
		ID:        7,
		ShopID:    int64Ptr(3),
		Name:      "Burger",
		Price:     decimal.RequireFromString("20.00"),
		Available: false,
	}

	passThroughTx(ctx, m)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.catalogRepo.EXPECT().GetItems(ctx, mock.Anything).Return([]*entity.Item{soldOut}, nil)

	_, err := service.CreateOrder(ctx, &actor, &usecase.CreateOrderInput{
		Lines: []usecase.CartLineInput{
			{FoodItemID: int64Ptr(7), Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLine)
	m.orderRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_CreateOrder_ItemWithoutShop(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	actor := entity.StudentActor(uuid.New())

	orphan := &entity.Item{
		Kind:  entity.KindFood,
		ID:    5,
		Name:  "Orphan",
		Price: decimal.RequireFromString("10.00"),
	}

	passThroughTx(ctx, m)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.catalogRepo.EXPECT().GetItems(ctx, mock.Anything).Return([]*entity.Item{orphan}, nil)

	_, err := service.CreateOrder(ctx, &actor, &usecase.CreateOrderInput{
		Lines: []usecase.CartLineInput{
			{FoodItemID: int64Ptr(5), Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingShop)
}

func TestOrderService_CreateOrder_UnknownItem(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	actor := entity.StudentActor(uuid.New())

	passThroughTx(ctx, m)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.catalogRepo.EXPECT().GetItems(ctx, mock.Anything).Return(nil, domainerrors.ErrItemNotFound)

	_, err := service.CreateOrder(ctx, &actor, &usecase.CreateOrderInput{
		Lines: []usecase.CartLineInput{
			{FoodItemID: int64Ptr(999), Quantity: 1},
		},
	})
	// A dangling reference reads as a malformed cart line, not a 404.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLine)
}

func TestOrderService_CreateOrder_ShoplessItemOnLaterLine(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	actor := entity.StudentActor(uuid.New())

	items := []*entity.Item{
		{Kind: entity.KindFood, ID: 1, ShopID: int64Ptr(3), Name: "Burger", Price: decimal.RequireFromString("20.00"), Available: true},
		{Kind: entity.KindFood, ID: 2, Name: "Orphan", Price: decimal.RequireFromString("10.00"), Available: true},
	}

	passThroughTx(ctx, m)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.catalogRepo.EXPECT().GetItems(ctx, mock.Anything).Return(items, nil)

	_, err := service.CreateOrder(ctx, &actor, &usecase.CreateOrderInput{
		Lines: []usecase.CartLineInput{
			{FoodItemID: int64Ptr(1), Quantity: 1},
			{FoodItemID: int64Ptr(2), Quantity: 1},
		},
	})
	// A shop-less item anywhere in the cart is a missing shop, not a
	// cross-shop mix.
	assert.ErrorIs(t, err, domainerrors.ErrMissingShop)
}

func TestOrderService_GetOrder_HiddenFromStranger(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	stranger := entity.StudentActor(uuid.New())

	order := &entity.Order{ID: 42, UserID: uuid.New(), ShopID: 3}
	m.orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)

	_, err := service.GetOrder(ctx, &stranger, 42)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_VisibleToOwner(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	owner := entity.StudentActor(userID)

	order := &entity.Order{ID: 42, UserID: userID, ShopID: 3}
	m.orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)

	got, err := service.GetOrder(ctx, &owner, 42)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_ListOrders_ShopManagerScope(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	manager := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopManager, ShopID: int64Ptr(3)}

	m.orderRepo.EXPECT().
		List(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, scope access.Scope, _ repository.OrderListFilter) ([]*entity.Order, error) {
			require.NotNil(t, scope.ShopID)
			assert.Equal(t, int64(3), *scope.ShopID)
			assert.False(t, scope.All)

			return []*entity.Order{}, nil
		})

	_, err := service.ListOrders(ctx, &manager, nil)
	require.NoError(t, err)
}

func TestOrderService_ListOrders_InvalidStatusFilter(t *testing.T) {
	service, _ := newTestOrderService(t)
	actor := entity.StudentActor(uuid.New())
	bogus := "COOKING"

	_, err := service.ListOrders(context.Background(), &actor, &usecase.ListOrdersInput{Status: &bogus})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestOrderService_UpdateStatus_StudentDenied(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	student := entity.StudentActor(userID)

	// Even the order's owner cannot advance fulfillment as a student.
	order := &entity.Order{ID: 42, UserID: userID, ShopID: 3, Status: entity.StatusReceived}
	m.orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)

	_, err := service.UpdateStatus(ctx, &student, 42, "PREPARING")
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	m.orderRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestOrderService_UpdateStatus_EmployeeSucceeds(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	employee := entity.Actor{UserID: uuid.New(), Role: entity.RoleEmployee}

	order := &entity.Order{ID: 42, UserID: uuid.New(), ShopID: 3, Status: entity.StatusReceived}
	m.orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)
	m.orderRepo.EXPECT().UpdateStatus(ctx, int64(42), entity.StatusOutForDelivery).Return(nil)
	m.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	updated, err := service.UpdateStatus(ctx, &employee, 42, "OUT_FOR_DELIVERY")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOutForDelivery, updated.Status)
}

func TestOrderService_UpdateStatus_BackwardTransitionAllowed(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	cook := entity.Actor{UserID: uuid.New(), Role: entity.RoleCook}

	order := &entity.Order{ID: 42, UserID: uuid.New(), ShopID: 3, Status: entity.StatusDelivered}
	m.orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)
	m.orderRepo.EXPECT().UpdateStatus(ctx, int64(42), entity.StatusPreparing).Return(nil)
	m.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	updated, err := service.UpdateStatus(ctx, &cook, 42, "PREPARING")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, updated.Status)
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	service, _ := newTestOrderService(t)
	employee := entity.Actor{UserID: uuid.New(), Role: entity.RoleEmployee}

	_, err := service.UpdateStatus(context.Background(), &employee, 42, "COOKING")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestOrderService_UpdateStatus_ShopManagerOtherShop(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	manager := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopManager, ShopID: int64Ptr(8)}

	order := &entity.Order{ID: 42, UserID: uuid.New(), ShopID: 3, Status: entity.StatusReceived}
	m.orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)

	// Another shop's order is invisible, so it reads as not found.
	_, err := service.UpdateStatus(ctx, &manager, 42, "PREPARING")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrderStatus_OwnerOnly(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	owner := entity.StudentActor(userID)

	order := &entity.Order{ID: 42, UserID: userID, Status: entity.StatusPreparing}
	m.orderRepo.EXPECT().FindByIDForUser(ctx, int64(42), userID).Return(order, nil)

	status, err := service.GetOrderStatus(ctx, &owner, 42)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, status)
}

func TestOrderService_DeleteOrder_OwnerSucceeds(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	owner := entity.StudentActor(userID)

	order := &entity.Order{ID: 42, UserID: userID, ShopID: 3}
	m.orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)

	// The lines and the order row are removed in one transaction.
	passThroughTx(ctx, m)
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo)
	m.orderRepo.EXPECT().Delete(ctx, int64(42)).Return(nil)

	require.NoError(t, service.DeleteOrder(ctx, &owner, 42))
}

func TestOrderService_DeleteOrder_StrangerSeesNotFound(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	stranger := entity.StudentActor(uuid.New())

	order := &entity.Order{ID: 42, UserID: uuid.New(), ShopID: 3}
	m.orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)

	err := service.DeleteOrder(ctx, &stranger, 42)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFail(t *testing.T) {
	service, m := newTestOrderService(t)
	ctx := context.Background()
	actor := entity.StudentActor(uuid.New())

	burger := &entity.Item{
		Kind:      entity.KindFood,
		ID:        7,
		ShopID:    int64Ptr(3),
		Name:      "Burger",
		Price:     decimal.RequireFromString("20.00"),
		Available: true,
	}

	passThroughTx(ctx, m)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo)
	m.catalogRepo.EXPECT().GetItems(ctx, mock.Anything).Return([]*entity.Item{burger}, nil)
	m.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(assert.AnError)

	_, err := service.CreateOrder(ctx, &actor, &usecase.CreateOrderInput{
		Lines: []usecase.CartLineInput{
			{FoodItemID: int64Ptr(7), Quantity: 1},
		},
	})
	require.NoError(t, err)
}
