package impl

import (
	"context"
	"log/slog"
	"time"

	"campusmarket/config"
	"campusmarket/internal/domain/access"
	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/domain/repository"
	"campusmarket/internal/domain/service"
	"campusmarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	if cfg.Ordering == nil {
		cfg.Ordering = &config.OrderingConfig{
			DeliveryFee:           decimal.RequireFromString("5.00"),
			FreeDeliveryThreshold: decimal.RequireFromString("150.00"),
		}
	}

	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
		config:    cfg,
		logger:    logger,
	}
}

// CreateOrder prices the cart and persists the order atomically.
func (s *orderService) CreateOrder(ctx context.Context, actor *entity.Actor, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if input == nil || len(input.Lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	lines, err := toCartLines(input.Lines)
	if err != nil {
		return nil, err
	}

	var order *entity.Order
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		catalogRepo := factory.NewCatalogRepository()

		refs := make([]entity.ItemRef, 0, len(lines))
		for _, line := range lines {
			refs = append(refs, line.Ref)
		}

		items, err := catalogRepo.GetItems(ctx, refs)
		if err != nil {
			// A line pointing at a nonexistent item is a malformed cart,
			// not a catalog lookup miss.
			if errors.Is(err, domainerrors.ErrItemNotFound) {
				return domainerrors.ErrInvalidLine.WithDetails("cart references an unknown item")
			}

			return err
		}

		priced, err := s.priceCart(actor, lines, items)
		if err != nil {
			return err
		}

		if err := factory.NewOrderRepository().Create(ctx, priced); err != nil {
			return err
		}
		order = priced

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, order)

	return order, nil
}

// priceCart derives the owning shop from the first item, enforces the
// single-shop invariant and computes the frozen total.
func (s *orderService) priceCart(actor *entity.Actor, lines []entity.CartLine, items []*entity.Item) (*entity.Order, error) {
	first := items[0]
	if first.ShopID == nil {
		return nil, domainerrors.ErrMissingShop
	}
	shopID := *first.ShopID

	total := decimal.Zero
	orderItems := make([]*entity.OrderItem, 0, len(lines))
	for i, line := range lines {
		item := items[i]
		if item.ShopID == nil {
			return nil, domainerrors.ErrMissingShop
		}
		if *item.ShopID != shopID {
			return nil, domainerrors.ErrMixedShopCart
		}
		if !item.Available {
			return nil, domainerrors.ErrInvalidLine.WithDetails(item.Name + " is not available")
		}

		// Each line price is rounded half up to two decimals before it
		// enters the sum, matching how the amounts appear on the receipt.
		linePrice := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		total = total.Add(linePrice)

		orderItems = append(orderItems, &entity.OrderItem{
			Ref:      line.Ref,
			ItemName: item.Name,
			Quantity: line.Quantity,
			Price:    linePrice,
		})
	}

	// The flat delivery fee applies up to and including the threshold.
	if total.LessThanOrEqual(s.config.Ordering.FreeDeliveryThreshold) {
		total = total.Add(s.config.Ordering.DeliveryFee)
	}
	total = total.Round(2)

	return &entity.Order{
		UserID:     actor.UserID,
		ShopID:     shopID,
		Status:     entity.StatusReceived,
		TotalPrice: total,
		Items:      orderItems,
	}, nil
}

// ListOrders retrieves the orders the actor is allowed to see.
func (s *orderService) ListOrders(ctx context.Context, actor *entity.Actor, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	filter := repository.OrderListFilter{}
	if input != nil {
		if input.Status != nil {
			status := entity.OrderStatus(*input.Status)
			if !status.IsValid() {
				return nil, domainerrors.ErrInvalidStatus
			}
			filter.Status = &status
		}
		filter.ShopID = input.ShopID
	}

	return s.orderRepo.List(ctx, access.ListScope(*actor), filter)
}

// GetOrder retrieves a single order the actor is allowed to see.
func (s *orderService) GetOrder(ctx context.Context, actor *entity.Actor, orderID int64) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !access.CanView(*actor, order) {
		// Invisible orders read as not found so existence never leaks.
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// GetOrderStatus retrieves just the status of the actor's own order.
func (s *orderService) GetOrderStatus(ctx context.Context, actor *entity.Actor, orderID int64) (entity.OrderStatus, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, orderID, actor.UserID)
	if err != nil {
		return "", err
	}

	return order.Status, nil
}

// UpdateStatus sets a new fulfillment status on a visible order.
func (s *orderService) UpdateStatus(ctx context.Context, actor *entity.Actor, orderID int64, status string) (*entity.Order, error) {
	newStatus := entity.OrderStatus(status)
	if !newStatus.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !access.CanView(*actor, order) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if !access.CanMutateStatus(*actor, order) {
		return nil, domainerrors.ErrPermissionDenied
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return nil, err
	}
	order.Status = newStatus

	s.publishEvent(ctx, order)

	return order, nil
}

// DeleteOrder removes an order the actor owns or manages.
func (s *orderService) DeleteOrder(ctx context.Context, actor *entity.Actor, orderID int64) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !access.CanView(*actor, order) {
		return domainerrors.ErrOrderNotFound
	}
	if !access.CanDelete(*actor, order) {
		return domainerrors.ErrPermissionDenied
	}

	// The lines and the order row go together or not at all.
	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewOrderRepository().Delete(ctx, orderID)
	})
}

// publishEvent emits an order event. Publishing is best effort; a broker
// failure never fails the request that triggered it.
func (s *orderService) publishEvent(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		OrderID:    order.ID,
		ShopID:     order.ShopID,
		UserID:     order.UserID.String(),
		Status:     order.Status.String(),
		TotalPrice: order.TotalPrice.StringFixed(2),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish order event",
			slog.Int64("order_id", order.ID),
			slog.String("status", order.Status.String()),
			slog.String("error", err.Error()),
		)
	}
}

// toCartLines validates the wire shape of the cart and converts it to
// typed references.
func toCartLines(inputs []usecase.CartLineInput) ([]entity.CartLine, error) {
	lines := make([]entity.CartLine, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidLine
		}
		ref, err := entity.ItemRefFromIDs(in.FoodItemID, in.ElectronicsItemID, in.GroceryItemID)
		if err != nil {
			return nil, domainerrors.ErrInvalidLine
		}
		lines = append(lines, entity.CartLine{Ref: ref, Quantity: in.Quantity})
	}

	return lines, nil
}
