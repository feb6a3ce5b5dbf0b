package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"campusmarket/internal/delivery/http/middleware"
	"campusmarket/internal/delivery/http/response"
	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemView is one priced line in an order response
type OrderItemView struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// OrderView is the wire shape of an order
type OrderView struct {
	ID         int64           `json:"id"`
	UserID     string          `json:"user_id"`
	ShopID     int64           `json:"shop_id"`
	ShopName   string          `json:"shop_name,omitempty"`
	Status     string          `json:"status"`
	TotalPrice string          `json:"total_price"`
	Items      []OrderItemView `json:"items"`
	CreatedAt  string          `json:"created_at,omitempty"`
}

func toOrderView(order *entity.Order) *OrderView {
	view := &OrderView{
		ID:         order.ID,
		UserID:     order.UserID.String(),
		ShopID:     order.ShopID,
		Status:     order.Status.String(),
		TotalPrice: order.TotalPrice.StringFixed(2),
		Items:      make([]OrderItemView, 0, len(order.Items)),
	}
	if order.Shop != nil {
		view.ShopName = order.Shop.Name
	}
	if !order.CreatedAt.IsZero() {
		view.CreatedAt = order.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, OrderItemView{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
		})
	}

	return view
}

func toOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

// CreateOrder handles placing a new order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req usecase.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), actor, &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed successfully")
}

// ListOwnOrders handles retrieving the caller's own orders
func (h *OrderHandler) ListOwnOrders(c echo.Context) error {
	return h.listOrders(c)
}

// ListManagedOrders handles the staff-facing order listing
func (h *OrderHandler) ListManagedOrders(c echo.Context) error {
	return h.listOrders(c)
}

// listOrders delegates scoping entirely to the usecase; the same query
// serves students and staff.
func (h *OrderHandler) listOrders(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	input := &usecase.ListOrdersInput{}
	if status := c.QueryParam("status"); status != "" {
		input.Status = &status
	}
	if shopParam := c.QueryParam("shop_id"); shopParam != "" {
		shopID, err := strconv.ParseInt(shopParam, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_SHOP_ID", "Invalid shop ID")
		}
		input.ShopID = &shopID
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), actor, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "Orders retrieved successfully")
}

// GetOrder handles retrieving a single order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order retrieved successfully")
}

// GetOrderStatus handles polling the fulfillment status of an own order
func (h *OrderHandler) GetOrderStatus(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	status, err := h.orderUC.GetOrderStatus(c.Request().Context(), actor, orderID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": status.String()}, "Order status retrieved successfully")
}

// UpdateStatusRequest represents the request body for a status change
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus handles advancing an order through fulfillment
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), actor, orderID, req.Status)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order status updated successfully")
}

// DeleteOrder handles removing an order
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), actor, orderID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order deleted successfully"}, "Order deleted successfully")
}

// parseOrderID extracts the order ID path parameter
func parseOrderID(c echo.Context) (int64, error) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return 0, response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	return orderID, nil
}

// requireActor extracts the resolved actor from the context
func requireActor(c echo.Context) (*entity.Actor, error) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return nil, response.Unauthorized(c, "INVALID_TOKEN", "Missing authorization context")
	}

	return actor, nil
}

// handleAppError handles application errors
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
