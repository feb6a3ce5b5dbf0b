// Package access decides which actors may see or mutate which orders.
// Decisions are pure functions over the actor context and the order; the
// callers translate a negative CanView into a not-found answer so that
// "exists but not yours" is indistinguishable from "does not exist".
package access

import (
	"campusmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Scope restricts an order listing to what the actor may see. Exactly one
// of the three shapes applies: everything, one shop, or one user's own
// orders.
type Scope struct {
	All    bool
	ShopID *int64
	UserID *uuid.UUID
}

// CanView reports whether the actor may read the given order.
//
// Precedence: super_admin sees everything; a shop_manager with an assigned
// shop sees that shop's orders; employees and cooks operate cross-shop; a
// shop_manager without an assignment degrades to the student rule, as does
// everyone else: own orders only.
func CanView(actor entity.Actor, order *entity.Order) bool {
	switch actor.Role {
	case entity.RoleSuperAdmin, entity.RoleEmployee, entity.RoleCook:
		return true
	case entity.RoleShopManager:
		if actor.HasShop() {
			return order.ShopID == *actor.ShopID
		}
	}

	return order.UserID == actor.UserID
}

// ListScope returns the query filter matching CanView for listings.
func ListScope(actor entity.Actor) Scope {
	switch actor.Role {
	case entity.RoleSuperAdmin, entity.RoleEmployee, entity.RoleCook:
		return Scope{All: true}
	case entity.RoleShopManager:
		if actor.HasShop() {
			return Scope{ShopID: actor.ShopID}
		}
	}

	userID := actor.UserID

	return Scope{UserID: &userID}
}

// CanMutateStatus reports whether the actor may change the order's
// fulfillment status. Students can never mutate status, not even on their
// own orders. The caller must check CanView first; an order the actor
// cannot see should read as not found, not as forbidden.
func CanMutateStatus(actor entity.Actor, order *entity.Order) bool {
	switch actor.Role {
	case entity.RoleSuperAdmin, entity.RoleEmployee, entity.RoleCook:
		return true
	case entity.RoleShopManager:
		return actor.HasShop() && order.ShopID == *actor.ShopID
	default:
		return false
	}
}

// CanDelete reports whether the actor may delete the order. Owners discard
// their own orders (typically after a failed payment); staff may delete any
// order they are allowed to mutate.
func CanDelete(actor entity.Actor, order *entity.Order) bool {
	if order.UserID == actor.UserID {
		return true
	}

	return CanMutateStatus(actor, order)
}

// CanManageCatalog reports whether the actor may create or edit items of
// the given shop.
func CanManageCatalog(actor entity.Actor, shopID int64) bool {
	switch actor.Role {
	case entity.RoleSuperAdmin:
		return true
	case entity.RoleShopManager:
		return actor.HasShop() && *actor.ShopID == shopID
	default:
		return false
	}
}
