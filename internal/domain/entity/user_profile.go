package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile carries the marketplace-specific data of one user: delivery
// contact details plus the role that drives access control. Role and shop
// assignment are mutable only by a super admin.
type UserProfile struct {
	UserID             uuid.UUID // One-to-one with the identity provider's user.
	PhoneNumber        string
	HostelOrOfficeName string
	RoomOrOfficeNumber string
	Role               Role
	ShopID             *int64 // Assigned shop, shop_manager only.
	Shop               *Shop  // Loaded shop record, nil when not preloaded.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Actor collapses the profile into the per-request actor context.
func (p *UserProfile) Actor() Actor {
	if p == nil || !p.Role.IsValid() {
		return Actor{Role: RoleStudent}
	}

	actor := Actor{UserID: p.UserID, Role: p.Role}
	if p.Role == RoleShopManager {
		actor.ShopID = p.ShopID
	}

	return actor
}
