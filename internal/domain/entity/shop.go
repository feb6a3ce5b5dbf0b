// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Shop represents one store on the marketplace. Shops are created by
// administrators out-of-band; deactivating a shop hides it from the public
// catalog and from order creation but never from historical records.
type Shop struct {
	ID          int64     // Surrogate key assigned by the database.
	Name        string    // Display name, unique across the platform.
	Description string    // Free-text description shown in the catalog.
	Image       string    // URL to the shop's image.
	IsActive    bool      // Inactive shops are hidden from the public catalog.
	CreatedAt   time.Time // Timestamp of when the shop was registered.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
