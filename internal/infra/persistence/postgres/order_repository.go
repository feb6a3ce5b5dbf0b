// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"campusmarket/internal/domain/access"
	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/domain/repository"
	"campusmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists an order together with all of its lines.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindByID retrieves an order with its lines and shop preloaded.
func (repo *orderRepository) FindByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Shop").
		Where("id = ?", orderID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// FindByIDForUser retrieves an order only when it belongs to the user.
func (repo *orderRepository) FindByIDForUser(ctx context.Context, orderID int64, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Shop").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for user")
	}

	return toOrderDomain(&orderM)
}

// List retrieves orders visible under the given scope, newest first.
func (repo *orderRepository) List(ctx context.Context, scope access.Scope, filter repository.OrderListFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Shop")

	if !scope.All {
		if scope.ShopID != nil {
			query = query.Where("shop_id = ?", *scope.ShopID)
		}
		if scope.UserID != nil {
			query = query.Where("user_id = ?", *scope.UserID)
		}
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ShopID != nil {
		query = query.Where("shop_id = ?", *filter.ShopID)
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// UpdateStatus sets the order status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order and its lines.
func (repo *orderRepository) Delete(ctx context.Context, orderID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", orderID).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

// SalesSummary aggregates delivered and paid orders created within [from, to).
func (repo *orderRepository) SalesSummary(ctx context.Context, from, to time.Time, shopID *int64, topN int) (*repository.SalesSummary, error) {
	base := repo.db.WithContext(ctx).
		Table("orders").
		Where("orders.status = ?", entity.StatusDelivered.String()).
		Where("orders.created_at >= ? AND orders.created_at < ?", from, to).
		Where("EXISTS (SELECT 1 FROM payments WHERE payments.order_id = orders.id AND payments.status = ?)",
			entity.PaymentSuccess.String())

	if shopID != nil {
		base = base.Where("orders.shop_id = ?", *shopID)
	}

	var totals struct {
		TotalOrders  int64
		TotalRevenue decimal.Decimal
	}
	if err := base.Session(&gorm.Session{}).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(orders.total_price), 0) AS total_revenue").
		Scan(&totals).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate sales totals")
	}

	var topItems []repository.ItemSales
	if err := base.Session(&gorm.Session{}).
		Select("order_items.item_name AS item_name, SUM(order_items.quantity) AS quantity, COALESCE(SUM(order_items.price), 0) AS revenue").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Group("order_items.item_name").
		Order("quantity DESC").
		Limit(topN).
		Scan(&topItems).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank top items")
	}

	return &repository.SalesSummary{
		TotalOrders:  totals.TotalOrders,
		TotalRevenue: totals.TotalRevenue,
		TopItems:     topItems,
	}, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		item, err := toOrderItemDomain(&data.Items[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &entity.Order{
		ID:         data.ID,
		UserID:     data.UserID,
		ShopID:     data.ShopID,
		Shop:       toShopDomain(data.Shop),
		Status:     entity.OrderStatus(data.Status),
		TotalPrice: data.TotalPrice,
		Items:      items,
		CreatedAt:  data.CreatedAt,
	}, nil
}

func toOrderItemDomain(data *model.OrderItemModel) (*entity.OrderItem, error) {
	ref, err := entity.ItemRefFromIDs(data.FoodItemID, data.ElectronicsItemID, data.GroceryItemID)
	if err != nil {
		return nil, errors.Wrapf(err, "order item %d has an inconsistent item reference", data.ID)
	}

	return &entity.OrderItem{
		ID:       data.ID,
		OrderID:  data.OrderID,
		Ref:      ref,
		ItemName: data.ItemName,
		Quantity: data.Quantity,
		Price:    data.Price,
	}, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		itemM, err := fromOrderItemDomain(item)
		if err != nil {
			return nil, err
		}
		items = append(items, *itemM)
	}

	return &model.OrderModel{
		ID:         data.ID,
		UserID:     data.UserID,
		ShopID:     data.ShopID,
		Status:     data.Status.String(),
		TotalPrice: data.TotalPrice,
		Items:      items,
	}, nil
}

func fromOrderItemDomain(data *entity.OrderItem) (*model.OrderItemModel, error) {
	if data.Ref.IsZero() {
		return nil, domainerrors.ErrInvalidLine
	}

	itemM := &model.OrderItemModel{
		ID:       data.ID,
		OrderID:  data.OrderID,
		ItemName: data.ItemName,
		Quantity: data.Quantity,
		Price:    data.Price,
	}

	id := data.Ref.ID()
	switch data.Ref.Kind() {
	case entity.KindFood:
		itemM.FoodItemID = &id
	case entity.KindElectronics:
		itemM.ElectronicsItemID = &id
	case entity.KindGrocery:
		itemM.GroceryItemID = &id
	}

	return itemM, nil
}
