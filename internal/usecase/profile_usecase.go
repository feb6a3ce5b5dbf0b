package usecase

import (
	"context"

	"github.com/google/uuid"

	"campusmarket/internal/domain/entity"
)

// UpdateProfileInput represents the input for editing a user profile.
// Role and ShopID changes are restricted to super admins.
type UpdateProfileInput struct {
	PhoneNumber        *string `json:"phone_number,omitempty"`
	HostelOrOfficeName *string `json:"hostel_or_office_name,omitempty"`
	RoomOrOfficeNumber *string `json:"room_or_office_number,omitempty"`
	Role               *string `json:"role,omitempty"`
	ShopID             *int64  `json:"shop_id,omitempty"`
}

// ProfileUsecase defines the interface for profile management use cases
type ProfileUsecase interface {
	// GetProfile retrieves the profile for a user
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// UpdateProfile edits the actor's own profile. Role changes require a
	// super admin actor.
	UpdateProfile(ctx context.Context, actor *entity.Actor, input *UpdateProfileInput) (*entity.UserProfile, error)

	// ResolveActor loads the authorization context for a user. A user
	// without a stored profile acts as a student.
	ResolveActor(ctx context.Context, userID uuid.UUID) (*entity.Actor, error)
}
