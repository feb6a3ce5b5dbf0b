package usecase

import (
	"context"

	"campusmarket/internal/domain/entity"
)

// UpsertItemInput represents the input for creating or updating a catalog item
type UpsertItemInput struct {
	Kind      string  `json:"kind" validate:"required,oneof=food electronics grocery"`
	ShopID    *int64  `json:"shop_id,omitempty"`
	Name      string  `json:"name" validate:"required"`
	Price     string  `json:"price" validate:"required"`
	Image     string  `json:"image,omitempty"`
	Available *bool   `json:"available,omitempty"`
	Extras    *string `json:"extras,omitempty"`
}

// ListItemsInput narrows the catalog listing
type ListItemsInput struct {
	Kind   string `json:"kind" validate:"required,oneof=food electronics grocery"`
	ShopID *int64 `json:"shop_id,omitempty"`
}

// CatalogUsecase defines the interface for catalog management use cases
type CatalogUsecase interface {
	// ListShops retrieves all active shops
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// ListItems retrieves available items of one kind
	ListItems(ctx context.Context, input *ListItemsInput) ([]*entity.Item, error)

	// CreateItem adds a catalog item to a shop the actor manages
	CreateItem(ctx context.Context, actor *entity.Actor, input *UpsertItemInput) (*entity.Item, error)

	// UpdateItem edits a catalog item of a shop the actor manages
	UpdateItem(ctx context.Context, actor *entity.Actor, itemID int64, input *UpsertItemInput) (*entity.Item, error)

	// DeleteItem soft deletes a catalog item. Existing order lines keep
	// their name and price snapshots.
	DeleteItem(ctx context.Context, actor *entity.Actor, kind string, itemID int64) error
}
