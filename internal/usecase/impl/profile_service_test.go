package impl

import (
	"context"
	"testing"

	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	mockRepo "campusmarket/internal/mocks/repository"
	"campusmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockProfileRepository) {
	t.Helper()

	profileRepo := mockRepo.NewMockProfileRepository(t)

	return NewProfileService(profileRepo), profileRepo
}

func TestProfileService_UpdateProfile_FirstWriteCreatesStudent(t *testing.T) {
	svc, profileRepo := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.StudentActor(userID)

	profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, domainerrors.ErrProfileNotFound)
	profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Run(func(_ context.Context, profile *entity.UserProfile) {
			assert.Equal(t, userID, profile.UserID)
			assert.Equal(t, entity.RoleStudent, profile.Role)
			assert.Equal(t, "0244123456", profile.PhoneNumber)
		}).
		Return(nil)

	profile, err := svc.UpdateProfile(ctx, &actor, &usecase.UpdateProfileInput{
		PhoneNumber:        strPtr("0244123456"),
		HostelOrOfficeName: strPtr("Unity Hall"),
		RoomOrOfficeNumber: strPtr("B204"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Unity Hall", profile.HostelOrOfficeName)
	assert.Equal(t, "B204", profile.RoomOrOfficeNumber)
}

func TestProfileService_UpdateProfile_PartialUpdateKeepsFields(t *testing.T) {
	svc, profileRepo := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.StudentActor(userID)

	existing := &entity.UserProfile{
		UserID:             userID,
		PhoneNumber:        "0244123456",
		HostelOrOfficeName: "Unity Hall",
		RoomOrOfficeNumber: "B204",
		Role:               entity.RoleStudent,
	}
	profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	profileRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

	profile, err := svc.UpdateProfile(ctx, &actor, &usecase.UpdateProfileInput{
		RoomOrOfficeNumber: strPtr("C110"),
	})
	require.NoError(t, err)
	assert.Equal(t, "C110", profile.RoomOrOfficeNumber)
	assert.Equal(t, "0244123456", profile.PhoneNumber)
	assert.Equal(t, "Unity Hall", profile.HostelOrOfficeName)
}

func TestProfileService_UpdateProfile_RoleChangeNeedsSuperAdmin(t *testing.T) {
	svc, profileRepo := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := entity.StudentActor(userID)

	existing := &entity.UserProfile{UserID: userID, Role: entity.RoleStudent}
	profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)

	_, err := svc.UpdateProfile(ctx, &actor, &usecase.UpdateProfileInput{
		Role: strPtr("cook"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrRoleAssignment)
	profileRepo.AssertNotCalled(t, "Upsert")
}

func TestProfileService_UpdateProfile_SuperAdminAssignsRole(t *testing.T) {
	svc, profileRepo := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	admin := entity.Actor{UserID: userID, Role: entity.RoleSuperAdmin}
	shopID := int64(3)

	existing := &entity.UserProfile{UserID: userID, Role: entity.RoleSuperAdmin}
	profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	profileRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

	profile, err := svc.UpdateProfile(ctx, &admin, &usecase.UpdateProfileInput{
		Role:   strPtr("shop_manager"),
		ShopID: &shopID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleShopManager, profile.Role)
	require.NotNil(t, profile.ShopID)
	assert.Equal(t, int64(3), *profile.ShopID)
}

func TestProfileService_UpdateProfile_UnknownRole(t *testing.T) {
	svc, profileRepo := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	admin := entity.Actor{UserID: userID, Role: entity.RoleSuperAdmin}

	existing := &entity.UserProfile{UserID: userID, Role: entity.RoleSuperAdmin}
	profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)

	_, err := svc.UpdateProfile(ctx, &admin, &usecase.UpdateProfileInput{
		Role: strPtr("janitor"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_ResolveActor_WithProfile(t *testing.T) {
	svc, profileRepo := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	shopID := int64(3)

	profile := &entity.UserProfile{
		UserID: userID,
		Role:   entity.RoleShopManager,
		ShopID: &shopID,
	}
	profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	actor, err := svc.ResolveActor(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleShopManager, actor.Role)
	require.NotNil(t, actor.ShopID)
	assert.Equal(t, int64(3), *actor.ShopID)
}

func TestProfileService_ResolveActor_DefaultsToStudent(t *testing.T) {
	svc, profileRepo := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, domainerrors.ErrProfileNotFound)

	actor, err := svc.ResolveActor(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStudent, actor.Role)
	assert.Equal(t, userID, actor.UserID)
	assert.Nil(t, actor.ShopID)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	svc, profileRepo := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, domainerrors.ErrProfileNotFound)

	_, err := svc.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
