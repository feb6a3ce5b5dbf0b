package impl

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/domain/repository"
	"campusmarket/internal/usecase"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileRepo repository.ProfileRepository) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
	}
}

// GetProfile retrieves the profile for a user.
func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	return s.profileRepo.FindByUserID(ctx, userID)
}

// UpdateProfile edits the actor's own profile.
func (s *profileService) UpdateProfile(ctx context.Context, actor *entity.Actor, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrProfileNotFound) {
			return nil, err
		}
		// First write creates the profile with the default role.
		profile = &entity.UserProfile{
			UserID: actor.UserID,
			Role:   entity.RoleStudent,
		}
	}

	if input.PhoneNumber != nil {
		profile.PhoneNumber = *input.PhoneNumber
	}
	if input.HostelOrOfficeName != nil {
		profile.HostelOrOfficeName = *input.HostelOrOfficeName
	}
	if input.RoomOrOfficeNumber != nil {
		profile.RoomOrOfficeNumber = *input.RoomOrOfficeNumber
	}

	// Role and shop assignment are administrative fields.
	if input.Role != nil || input.ShopID != nil {
		if actor.Role != entity.RoleSuperAdmin {
			return nil, domainerrors.ErrRoleAssignment
		}
		if input.Role != nil {
			role := entity.Role(*input.Role)
			if !role.IsValid() {
				return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
			}
			profile.Role = role
		}
		if input.ShopID != nil {
			profile.ShopID = input.ShopID
		}
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// ResolveActor loads the authorization context for a user.
func (s *profileService) ResolveActor(ctx context.Context, userID uuid.UUID) (*entity.Actor, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProfileNotFound) {
			actor := entity.StudentActor(userID)

			return &actor, nil
		}

		return nil, err
	}

	actor := profile.Actor()

	return &actor, nil
}
