package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"campusmarket/internal/delivery/http/response"
	"campusmarket/internal/domain/entity"
	"campusmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog browsing and management
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ShopView is the wire shape of a shop
type ShopView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ItemView is the wire shape of a catalog item
type ItemView struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	ShopID    *int64 `json:"shop_id,omitempty"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image,omitempty"`
	Available bool   `json:"available"`
	Extras    string `json:"extras,omitempty"`
}

func toItemView(item *entity.Item) *ItemView {
	return &ItemView{
		ID:        item.ID,
		Kind:      item.Kind.String(),
		ShopID:    item.ShopID,
		Name:      item.Name,
		Price:     item.Price.StringFixed(2),
		Image:     item.Image,
		Available: item.Available,
		Extras:    item.Extras,
	}
}

func toItemViews(items []*entity.Item) []*ItemView {
	views := make([]*ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, toItemView(item))
	}

	return views
}

// ListShops handles the public shop directory
func (h *CatalogHandler) ListShops(c echo.Context) error {
	shops, err := h.catalogUC.ListShops(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	views := make([]*ShopView, 0, len(shops))
	for _, shop := range shops {
		views = append(views, &ShopView{
			ID:          shop.ID,
			Name:        shop.Name,
			Description: shop.Description,
			Image:       shop.Image,
		})
	}

	return response.Success(c, http.StatusOK, views, "Shops retrieved successfully")
}

// ListItemsOfKind builds the browsing handler for one catalog kind
func (h *CatalogHandler) ListItemsOfKind(kind entity.ItemKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &usecase.ListItemsInput{Kind: kind.String()}
		if shopParam := c.QueryParam("shop_id"); shopParam != "" {
			shopID, err := strconv.ParseInt(shopParam, 10, 64)
			if err != nil {
				return response.BadRequest(c, "INVALID_SHOP_ID", "Invalid shop ID")
			}
			input.ShopID = &shopID
		}

		items, err := h.catalogUC.ListItems(c.Request().Context(), input)
		if err != nil {
			return handleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, toItemViews(items), "Items retrieved successfully")
	}
}

// CreateItem handles adding a catalog item
func (h *CatalogHandler) CreateItem(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req usecase.UpsertItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	// The kind lives in the path, not the body.
	req.Kind = c.Param("kind")

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.catalogUC.CreateItem(c.Request().Context(), actor, &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toItemView(item), "Item created successfully")
}

// UpdateItem handles editing a catalog item
func (h *CatalogHandler) UpdateItem(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || itemID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var req usecase.UpsertItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	req.Kind = c.Param("kind")

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.catalogUC.UpdateItem(c.Request().Context(), actor, itemID, &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toItemView(item), "Item updated successfully")
}

// DeleteItem handles retiring a catalog item
func (h *CatalogHandler) DeleteItem(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || itemID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	if err := h.catalogUC.DeleteItem(c.Request().Context(), actor, c.Param("kind"), itemID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item deleted successfully"}, "Item deleted successfully")
}
