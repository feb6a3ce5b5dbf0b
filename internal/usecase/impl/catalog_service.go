package impl

import (
	"context"

	"campusmarket/internal/domain/access"
	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/domain/repository"
	"campusmarket/internal/usecase"

	"github.com/shopspring/decimal"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

// ListShops retrieves all active shops.
func (s *catalogService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	return s.catalogRepo.ListShops(ctx)
}

// ListItems retrieves available items of one kind.
func (s *catalogService) ListItems(ctx context.Context, input *usecase.ListItemsInput) ([]*entity.Item, error) {
	kind := entity.ItemKind(input.Kind)
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown item kind")
	}

	return s.catalogRepo.ListItems(ctx, kind, input.ShopID)
}

// CreateItem adds a catalog item to a shop the actor manages.
func (s *catalogService) CreateItem(ctx context.Context, actor *entity.Actor, input *usecase.UpsertItemInput) (*entity.Item, error) {
	item, err := s.itemFromInput(input)
	if err != nil {
		return nil, err
	}

	if item.ShopID == nil {
		return nil, domainerrors.ErrMissingShop
	}
	if !access.CanManageCatalog(*actor, *item.ShopID) {
		return nil, domainerrors.ErrPermissionDenied
	}

	// Reject unknown shops up front for a clean error instead of a
	// constraint violation.
	if _, err := s.catalogRepo.GetShop(ctx, *item.ShopID); err != nil {
		return nil, err
	}

	if err := s.catalogRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem edits a catalog item of a shop the actor manages.
func (s *catalogService) UpdateItem(ctx context.Context, actor *entity.Actor, itemID int64, input *usecase.UpsertItemInput) (*entity.Item, error) {
	kind := entity.ItemKind(input.Kind)
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown item kind")
	}

	ref, err := entity.NewItemRef(kind, itemID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid item reference")
	}

	existing, err := s.catalogRepo.GetItem(ctx, ref)
	if err != nil {
		return nil, err
	}
	if existing.ShopID == nil || !access.CanManageCatalog(*actor, *existing.ShopID) {
		return nil, domainerrors.ErrPermissionDenied
	}

	updated, err := s.itemFromInput(input)
	if err != nil {
		return nil, err
	}
	updated.ID = itemID
	if updated.ShopID == nil {
		updated.ShopID = existing.ShopID
	}
	// Moving an item to another shop requires managing the target too.
	if *updated.ShopID != *existing.ShopID && !access.CanManageCatalog(*actor, *updated.ShopID) {
		return nil, domainerrors.ErrPermissionDenied
	}

	if err := s.catalogRepo.UpdateItem(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteItem soft deletes a catalog item.
func (s *catalogService) DeleteItem(ctx context.Context, actor *entity.Actor, kind string, itemID int64) error {
	itemKind := entity.ItemKind(kind)
	if !itemKind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown item kind")
	}

	ref, err := entity.NewItemRef(itemKind, itemID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid item reference")
	}

	existing, err := s.catalogRepo.GetItem(ctx, ref)
	if err != nil {
		return err
	}
	if existing.ShopID == nil || !access.CanManageCatalog(*actor, *existing.ShopID) {
		return domainerrors.ErrPermissionDenied
	}

	return s.catalogRepo.DeleteItem(ctx, ref)
}

func (s *catalogService) itemFromInput(input *usecase.UpsertItemInput) (*entity.Item, error) {
	kind := entity.ItemKind(input.Kind)
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown item kind")
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil || price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a non-negative decimal string")
	}

	item := &entity.Item{
		Kind:      kind,
		ShopID:    input.ShopID,
		Name:      input.Name,
		Price:     price.Round(2),
		Image:     input.Image,
		Available: true,
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	if input.Extras != nil {
		if kind != entity.KindFood {
			return nil, domainerrors.ErrValidationFailed.WithDetails("extras apply to food items only")
		}
		item.Extras = *input.Extras
	}

	return item, nil
}
