package repository

import (
	"context"

	"campusmarket/internal/domain/entity"
)

// CatalogRepository defines the interface for shop and item data access
type CatalogRepository interface {
	// GetShop retrieves a shop by its ID
	GetShop(ctx context.Context, shopID int64) (*entity.Shop, error)

	// ListShops retrieves all active shops
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// GetItem retrieves a single item by its typed reference
	GetItem(ctx context.Context, ref entity.ItemRef) (*entity.Item, error)

	// GetItems retrieves the items for all given references in one round
	// trip. The result preserves the order of refs; a missing item yields
	// an error rather than a hole.
	GetItems(ctx context.Context, refs []entity.ItemRef) ([]*entity.Item, error)

	// ListItems retrieves available items of one kind, optionally scoped
	// to a shop
	ListItems(ctx context.Context, kind entity.ItemKind, shopID *int64) ([]*entity.Item, error)

	// CreateItem inserts a new catalog item and fills in its generated ID
	CreateItem(ctx context.Context, item *entity.Item) error

	// UpdateItem updates the mutable fields of an existing item
	UpdateItem(ctx context.Context, item *entity.Item) error

	// DeleteItem soft deletes an item. Past order lines keep their
	// snapshots and are not affected.
	DeleteItem(ctx context.Context, ref entity.ItemRef) error
}
