package entity

import "errors"

// ErrInvalidItemRef is returned when a cart line does not reference exactly
// one catalog item.
var ErrInvalidItemRef = errors.New("exactly one of food, electronics or grocery item must be referenced")

// ItemRef is a reference to exactly one catalog item, tagged by kind.
// The zero value is invalid; construct through NewItemRef or ItemRefFromIDs
// so the exactly-one invariant holds everywhere an ItemRef appears.
type ItemRef struct {
	kind ItemKind
	id   int64
}

// NewItemRef builds a reference to the item with the given kind and id.
func NewItemRef(kind ItemKind, id int64) (ItemRef, error) {
	if !kind.IsValid() || id <= 0 {
		return ItemRef{}, ErrInvalidItemRef
	}

	return ItemRef{kind: kind, id: id}, nil
}

// ItemRefFromIDs builds a reference from the wire shape of a cart line,
// where each kind is an optional id field. Zero or more than one non-nil id
// is rejected.
func ItemRefFromIDs(foodID, electronicsID, groceryID *int64) (ItemRef, error) {
	var (
		ref   ItemRef
		count int
	)

	if foodID != nil {
		ref = ItemRef{kind: KindFood, id: *foodID}
		count++
	}
	if electronicsID != nil {
		ref = ItemRef{kind: KindElectronics, id: *electronicsID}
		count++
	}
	if groceryID != nil {
		ref = ItemRef{kind: KindGrocery, id: *groceryID}
		count++
	}

	if count != 1 || ref.id <= 0 {
		return ItemRef{}, ErrInvalidItemRef
	}

	return ref, nil
}

// Kind returns the catalog the reference points into.
func (r ItemRef) Kind() ItemKind {
	return r.kind
}

// ID returns the item id within its catalog.
func (r ItemRef) ID() int64 {
	return r.id
}

// IsZero reports whether the reference was never constructed.
func (r ItemRef) IsZero() bool {
	return r.kind == "" && r.id == 0
}
