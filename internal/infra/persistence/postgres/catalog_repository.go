// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/domain/repository"
	"campusmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
// The catalog spans three physical tables, one per item kind; the kind on
// the typed reference picks the table.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// GetShop retrieves a shop by its ID.
func (repo *catalogRepository) GetShop(ctx context.Context, shopID int64) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", shopID).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// ListShops retrieves all active shops.
func (repo *catalogRepository) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// GetItem retrieves a single item by its typed reference.
func (repo *catalogRepository) GetItem(ctx context.Context, ref entity.ItemRef) (*entity.Item, error) {
	items, err := repo.GetItems(ctx, []entity.ItemRef{ref})
	if err != nil {
		return nil, err
	}

	return items[0], nil
}

// GetItems retrieves the items for all given references in one round trip per kind.
func (repo *catalogRepository) GetItems(ctx context.Context, refs []entity.ItemRef) ([]*entity.Item, error) {
	idsByKind := make(map[entity.ItemKind][]int64)
	for _, ref := range refs {
		idsByKind[ref.Kind()] = append(idsByKind[ref.Kind()], ref.ID())
	}

	found := make(map[entity.ItemRef]*entity.Item, len(refs))
	for kind, ids := range idsByKind {
		items, err := repo.findItemsOfKind(ctx, kind, ids)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			ref, err := entity.NewItemRef(item.Kind, item.ID)
			if err != nil {
				return nil, err
			}
			found[ref] = item
		}
	}

	// Preserve request order and fail on the first missing reference.
	result := make([]*entity.Item, 0, len(refs))
	for _, ref := range refs {
		item, ok := found[ref]
		if !ok {
			return nil, domainerrors.ErrItemNotFound
		}
		result = append(result, item)
	}

	return result, nil
}

// ListItems retrieves available items of one kind, optionally scoped to a shop.
func (repo *catalogRepository) ListItems(ctx context.Context, kind entity.ItemKind, shopID *int64) ([]*entity.Item, error) {
	query := repo.db.WithContext(ctx).Where("available = ?", true)
	if shopID != nil {
		query = query.Where("shop_id = ?", *shopID)
	}
	query = query.Order("name ASC")

	switch kind {
	case entity.KindFood:
		var models []*model.FoodItemModel
		if err := query.Find(&models).Error; err != nil {
			return nil, errors.Wrap(err, "failed to list food items")
		}
		items := make([]*entity.Item, 0, len(models))
		for _, itemM := range models {
			items = append(items, toFoodItemDomain(itemM))
		}

		return items, nil
	case entity.KindElectronics:
		var models []*model.ElectronicsItemModel
		if err := query.Find(&models).Error; err != nil {
			return nil, errors.Wrap(err, "failed to list electronics items")
		}
		items := make([]*entity.Item, 0, len(models))
		for _, itemM := range models {
			items = append(items, toElectronicsItemDomain(itemM))
		}

		return items, nil
	case entity.KindGrocery:
		var models []*model.GroceryItemModel
		if err := query.Find(&models).Error; err != nil {
			return nil, errors.Wrap(err, "failed to list grocery items")
		}
		items := make([]*entity.Item, 0, len(models))
		for _, itemM := range models {
			items = append(items, toGroceryItemDomain(itemM))
		}

		return items, nil
	default:
		return nil, domainerrors.ErrItemNotFound
	}
}

// CreateItem inserts a new catalog item and fills in its generated ID.
func (repo *catalogRepository) CreateItem(ctx context.Context, item *entity.Item) error {
	db := repo.db.WithContext(ctx)

	switch item.Kind {
	case entity.KindFood:
		itemM := fromFoodItemDomain(item)
		if err := db.Create(itemM).Error; err != nil {
			return repo.writeError(err, "failed to create food item")
		}
		item.ID = itemM.ID
		item.CreatedAt = itemM.CreatedAt
	case entity.KindElectronics:
		itemM := fromElectronicsItemDomain(item)
		if err := db.Create(itemM).Error; err != nil {
			return repo.writeError(err, "failed to create electronics item")
		}
		item.ID = itemM.ID
		item.CreatedAt = itemM.CreatedAt
	case entity.KindGrocery:
		itemM := fromGroceryItemDomain(item)
		if err := db.Create(itemM).Error; err != nil {
			return repo.writeError(err, "failed to create grocery item")
		}
		item.ID = itemM.ID
		item.CreatedAt = itemM.CreatedAt
	default:
		return domainerrors.ErrItemNotFound
	}

	return nil
}

// UpdateItem updates the mutable fields of an existing item.
func (repo *catalogRepository) UpdateItem(ctx context.Context, item *entity.Item) error {
	updates := map[string]any{
		"name":      item.Name,
		"price":     item.Price,
		"image":     item.Image,
		"available": item.Available,
		"shop_id":   item.ShopID,
	}
	if item.Kind == entity.KindFood {
		updates["extras"] = item.Extras
	}

	result := repo.db.WithContext(ctx).
		Model(itemModelOfKind(item.Kind)).
		Where("id = ?", item.ID).
		Updates(updates)

	if result.Error != nil {
		return repo.writeError(result.Error, "failed to update item")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound
	}

	return nil
}

// DeleteItem soft deletes an item.
func (repo *catalogRepository) DeleteItem(ctx context.Context, ref entity.ItemRef) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", ref.ID()).
		Delete(itemModelOfKind(ref.Kind()))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound
	}

	return nil
}

func (repo *catalogRepository) findItemsOfKind(ctx context.Context, kind entity.ItemKind, ids []int64) ([]*entity.Item, error) {
	db := repo.db.WithContext(ctx).Where("id IN ?", ids)

	switch kind {
	case entity.KindFood:
		var models []*model.FoodItemModel
		if err := db.Find(&models).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find food items")
		}
		items := make([]*entity.Item, 0, len(models))
		for _, itemM := range models {
			items = append(items, toFoodItemDomain(itemM))
		}

		return items, nil
	case entity.KindElectronics:
		var models []*model.ElectronicsItemModel
		if err := db.Find(&models).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find electronics items")
		}
		items := make([]*entity.Item, 0, len(models))
		for _, itemM := range models {
			items = append(items, toElectronicsItemDomain(itemM))
		}

		return items, nil
	case entity.KindGrocery:
		var models []*model.GroceryItemModel
		if err := db.Find(&models).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find grocery items")
		}
		items := make([]*entity.Item, 0, len(models))
		for _, itemM := range models {
			items = append(items, toGroceryItemDomain(itemM))
		}

		return items, nil
	default:
		return nil, domainerrors.ErrItemNotFound
	}
}

func (repo *catalogRepository) writeError(err error, details string) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrShopNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func itemModelOfKind(kind entity.ItemKind) any {
	switch kind {
	case entity.KindElectronics:
		return &model.ElectronicsItemModel{}
	case entity.KindGrocery:
		return &model.GroceryItemModel{}
	default:
		return &model.FoodItemModel{}
	}
}

// --- Mapper Functions ---

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toFoodItemDomain(data *model.FoodItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		Kind:      entity.KindFood,
		ID:        data.ID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Price:     data.Price,
		Image:     data.Image,
		Available: data.Available,
		Extras:    data.Extras,
		CreatedAt: data.CreatedAt,
	}
}

func toElectronicsItemDomain(data *model.ElectronicsItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		Kind:      entity.KindElectronics,
		ID:        data.ID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Price:     data.Price,
		Image:     data.Image,
		Available: data.Available,
		CreatedAt: data.CreatedAt,
	}
}

func toGroceryItemDomain(data *model.GroceryItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		Kind:      entity.KindGrocery,
		ID:        data.ID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Price:     data.Price,
		Image:     data.Image,
		Available: data.Available,
		CreatedAt: data.CreatedAt,
	}
}

func fromFoodItemDomain(data *entity.Item) *model.FoodItemModel {
	if data == nil {
		return nil
	}

	return &model.FoodItemModel{
		ID:        data.ID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Price:     data.Price,
		Image:     data.Image,
		Available: data.Available,
		Extras:    data.Extras,
		CreatedAt: data.CreatedAt,
	}
}

func fromElectronicsItemDomain(data *entity.Item) *model.ElectronicsItemModel {
	if data == nil {
		return nil
	}

	return &model.ElectronicsItemModel{
		ID:        data.ID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Price:     data.Price,
		Image:     data.Image,
		Available: data.Available,
		CreatedAt: data.CreatedAt,
	}
}

func fromGroceryItemDomain(data *entity.Item) *model.GroceryItemModel {
	if data == nil {
		return nil
	}

	return &model.GroceryItemModel{
		ID:        data.ID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Price:     data.Price,
		Image:     data.Image,
		Available: data.Available,
		CreatedAt: data.CreatedAt,
	}
}
