package impl

import (
	"context"
	"testing"

	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	mockRepo "campusmarket/internal/mocks/repository"
	"campusmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockCatalogRepository) {
	t.Helper()

	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	return NewCatalogService(catalogRepo), catalogRepo
}

func strPtr(v string) *string {
	return &v
}

func TestCatalogService_ListItems(t *testing.T) {
	svc, catalogRepo := newTestCatalogService(t)
	ctx := context.Background()

	items := []*entity.Item{
		{Kind: entity.KindFood, ID: 1, Name: "Burger", Price: decimal.RequireFromString("20.00")},
	}
	catalogRepo.EXPECT().ListItems(ctx, entity.KindFood, (*int64)(nil)).Return(items, nil)

	got, err := svc.ListItems(ctx, &usecase.ListItemsInput{Kind: "food"})
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestCatalogService_ListItems_UnknownKind(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	_, err := svc.ListItems(context.Background(), &usecase.ListItemsInput{Kind: "furniture"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateItem_ManagerOwnShop(t *testing.T) {
	svc, catalogRepo := newTestCatalogService(t)
	ctx := context.Background()
	shopID := int64(3)
	manager := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopManager, ShopID: &shopID}

	catalogRepo.EXPECT().GetShop(ctx, int64(3)).Return(&entity.Shop{ID: 3, Name: "Campus Grill"}, nil)
	catalogRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.Item")).
		Run(func(_ context.Context, item *entity.Item) {
			item.ID = 7
		}).
		Return(nil)

	item, err := svc.CreateItem(ctx, &manager, &usecase.UpsertItemInput{
		Kind:   "food",
		ShopID: &shopID,
		Name:   "Burger",
		Price:  "20.999",
		Extras: strPtr("cheese, bacon"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), item.ID)
	assert.True(t, item.Available)
	// The stored price is normalized to two decimals.
	assert.True(t, decimal.RequireFromString("21.00").Equal(item.Price))
	assert.Equal(t, "cheese, bacon", item.Extras)
}

func TestCatalogService_CreateItem_ManagerOtherShopDenied(t *testing.T) {
	svc, _ := newTestCatalogService(t)
	shopID := int64(3)
	otherShop := int64(8)
	manager := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopManager, ShopID: &shopID}

	_, err := svc.CreateItem(context.Background(), &manager, &usecase.UpsertItemInput{
		Kind:   "food",
		ShopID: &otherShop,
		Name:   "Burger",
		Price:  "20.00",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCatalogService_CreateItem_StudentDenied(t *testing.T) {
	svc, _ := newTestCatalogService(t)
	shopID := int64(3)
	student := entity.StudentActor(uuid.New())

	_, err := svc.CreateItem(context.Background(), &student, &usecase.UpsertItemInput{
		Kind:   "food",
		ShopID: &shopID,
		Name:   "Burger",
		Price:  "20.00",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCatalogService_CreateItem_InvalidPrice(t *testing.T) {
	svc, _ := newTestCatalogService(t)
	shopID := int64(3)
	admin := entity.Actor{UserID: uuid.New(), Role: entity.RoleSuperAdmin}

	tests := []struct {
		name  string
		price string
	}{
		{"not a number", "twenty"},
		{"negative", "-5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateItem(context.Background(), &admin, &usecase.UpsertItemInput{
				Kind:   "food",
				ShopID: &shopID,
				Name:   "Burger",
				Price:  tt.price,
			})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_CreateItem_ExtrasOnFoodOnly(t *testing.T) {
	svc, _ := newTestCatalogService(t)
	shopID := int64(3)
	admin := entity.Actor{UserID: uuid.New(), Role: entity.RoleSuperAdmin}

	_, err := svc.CreateItem(context.Background(), &admin, &usecase.UpsertItemInput{
		Kind:   "grocery",
		ShopID: &shopID,
		Name:   "Rice",
		Price:  "10.00",
		Extras: strPtr("spicy"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateItem_MissingShop(t *testing.T) {
	svc, _ := newTestCatalogService(t)
	admin := entity.Actor{UserID: uuid.New(), Role: entity.RoleSuperAdmin}

	_, err := svc.CreateItem(context.Background(), &admin, &usecase.UpsertItemInput{
		Kind:  "food",
		Name:  "Burger",
		Price: "20.00",
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingShop)
}

func TestCatalogService_UpdateItem_ManagerOwnShop(t *testing.T) {
	svc, catalogRepo := newTestCatalogService(t)
	ctx := context.Background()
	shopID := int64(3)
	manager := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopManager, ShopID: &shopID}

	ref, err := entity.NewItemRef(entity.KindFood, 7)
	require.NoError(t, err)

	existing := &entity.Item{Kind: entity.KindFood, ID: 7, ShopID: &shopID, Name: "Burger", Price: decimal.RequireFromString("20.00")}
	catalogRepo.EXPECT().GetItem(ctx, ref).Return(existing, nil)
	catalogRepo.EXPECT().UpdateItem(ctx, mock.AnythingOfType("*entity.Item")).Return(nil)

	updated, err := svc.UpdateItem(ctx, &manager, 7, &usecase.UpsertItemInput{
		Kind:  "food",
		Name:  "Double burger",
		Price: "28.00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
	assert.Equal(t, "Double burger", updated.Name)
	require.NotNil(t, updated.ShopID)
	assert.Equal(t, int64(3), *updated.ShopID)
}

func TestCatalogService_UpdateItem_MoveToUnmanagedShopDenied(t *testing.T) {
	svc, catalogRepo := newTestCatalogService(t)
	ctx := context.Background()
	shopID := int64(3)
	otherShop := int64(8)
	manager := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopManager, ShopID: &shopID}

	ref, err := entity.NewItemRef(entity.KindFood, 7)
	require.NoError(t, err)

	existing := &entity.Item{Kind: entity.KindFood, ID: 7, ShopID: &shopID, Name: "Burger", Price: decimal.RequireFromString("20.00")}
	catalogRepo.EXPECT().GetItem(ctx, ref).Return(existing, nil)

	_, err = svc.UpdateItem(ctx, &manager, 7, &usecase.UpsertItemInput{
		Kind:   "food",
		ShopID: &otherShop,
		Name:   "Burger",
		Price:  "20.00",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCatalogService_DeleteItem_ManagerOwnShop(t *testing.T) {
	svc, catalogRepo := newTestCatalogService(t)
	ctx := context.Background()
	shopID := int64(3)
	manager := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopManager, ShopID: &shopID}

	ref, err := entity.NewItemRef(entity.KindGrocery, 4)
	require.NoError(t, err)

	existing := &entity.Item{Kind: entity.KindGrocery, ID: 4, ShopID: &shopID, Name: "Rice"}
	catalogRepo.EXPECT().GetItem(ctx, ref).Return(existing, nil)
	catalogRepo.EXPECT().DeleteItem(ctx, ref).Return(nil)

	require.NoError(t, svc.DeleteItem(ctx, &manager, "grocery", 4))
}

func TestCatalogService_DeleteItem_EmployeeDenied(t *testing.T) {
	svc, catalogRepo := newTestCatalogService(t)
	ctx := context.Background()
	shopID := int64(3)
	employee := entity.Actor{UserID: uuid.New(), Role: entity.RoleEmployee}

	ref, err := entity.NewItemRef(entity.KindFood, 7)
	require.NoError(t, err)

	existing := &entity.Item{Kind: entity.KindFood, ID: 7, ShopID: &shopID, Name: "Burger"}
	catalogRepo.EXPECT().GetItem(ctx, ref).Return(existing, nil)

	err = svc.DeleteItem(ctx, &employee, "food", 7)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}
