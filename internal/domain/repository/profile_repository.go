package repository

import (
	"context"

	"github.com/google/uuid"

	"campusmarket/internal/domain/entity"
)

// ProfileRepository defines the interface for user profile data access
type ProfileRepository interface {
	// FindByUserID retrieves a profile with its shop preloaded
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// Upsert creates the profile on first write and updates it afterwards
	Upsert(ctx context.Context, profile *entity.UserProfile) error
}
