package entity

import "github.com/google/uuid"

// Actor is the authenticated caller of an operation, resolved once per
// request from the user's profile and passed explicitly into the access
// guard and the use cases. An actor with no stored profile defaults to the
// student role with no shop affiliation.
type Actor struct {
	UserID uuid.UUID
	Email  string // From the token claims, not the stored profile.
	Role   Role
	ShopID *int64 // Assigned shop for shop-scoped roles, nil otherwise.
}

// StudentActor builds the default actor for a user without a profile.
func StudentActor(userID uuid.UUID) Actor {
	return Actor{UserID: userID, Role: RoleStudent}
}

// HasShop reports whether the actor carries a shop assignment.
func (a Actor) HasShop() bool {
	return a.ShopID != nil
}
