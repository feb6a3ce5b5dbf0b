package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind identifies which of the three catalog tables an item lives in.
// The identity spaces are disjoint: food item 7 and grocery item 7 are
// unrelated records.
type ItemKind string

const (
	// KindFood indicates an item from the food catalog.
	KindFood ItemKind = "food"
	// KindElectronics indicates an item from the electronics catalog.
	KindElectronics ItemKind = "electronics"
	// KindGrocery indicates an item from the grocery catalog.
	KindGrocery ItemKind = "grocery"
)

// String returns the string representation of the ItemKind.
func (k ItemKind) String() string {
	return string(k)
}

// IsValid checks if the ItemKind is a valid value.
func (k ItemKind) IsValid() bool {
	switch k {
	case KindFood, KindElectronics, KindGrocery:
		return true
	default:
		return false
	}
}

// ItemKinds lists every valid kind, in catalog order.
func ItemKinds() []ItemKind {
	return []ItemKind{KindFood, KindElectronics, KindGrocery}
}

// Item is a catalog entry of any kind. The three kinds share a shape;
// only food carries the free-text extras field.
type Item struct {
	Kind      ItemKind        // Which catalog table the item belongs to.
	ID        int64           // Identity within that kind's table.
	ShopID    *int64          // Owning shop; nil only for legacy records.
	Name      string          // Display name.
	Price     decimal.Decimal // Unit price, non-negative, 2-dp.
	Image     string          // URL to the item's image.
	Available bool            // Whether the item can currently be ordered.
	Extras    string          // Free-text extras, food items only.
	CreatedAt time.Time       // Timestamp of when the item was listed.
}
