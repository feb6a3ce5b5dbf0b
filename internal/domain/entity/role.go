package entity

// Role represents the type of role an actor can have in the system.
type Role string

const (
	// RoleSuperAdmin has unrestricted access across all shops.
	RoleSuperAdmin Role = "super_admin"
	// RoleShopManager manages orders and items of one assigned shop.
	RoleShopManager Role = "shop_manager"
	// RoleEmployee is fulfillment staff operating across all shops.
	RoleEmployee Role = "employee"
	// RoleCook is kitchen staff operating across all shops.
	RoleCook Role = "cook"
	// RoleStudent is the default customer role.
	RoleStudent Role = "student"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleShopManager, RoleEmployee, RoleCook, RoleStudent:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role belongs to the staff set that may
// appear on fulfillment surfaces.
func (r Role) IsStaff() bool {
	switch r {
	case RoleSuperAdmin, RoleShopManager, RoleEmployee, RoleCook:
		return true
	default:
		return false
	}
}
