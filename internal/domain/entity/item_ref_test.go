package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemRef(t *testing.T) {
	ref, err := NewItemRef(KindFood, 7)
	require.NoError(t, err)
	assert.Equal(t, KindFood, ref.Kind())
	assert.Equal(t, int64(7), ref.ID())
	assert.False(t, ref.IsZero())

	_, err = NewItemRef(ItemKind("furniture"), 7)
	assert.ErrorIs(t, err, ErrInvalidItemRef)

	_, err = NewItemRef(KindFood, 0)
	assert.ErrorIs(t, err, ErrInvalidItemRef)
}

func TestItemRefFromIDs(t *testing.T) {
	id := int64(7)
	other := int64(9)

	tests := []struct {
		name        string
		food        *int64
		electronics *int64
		grocery     *int64
		wantKind    ItemKind
		wantErr     bool
	}{
		{"food only", &id, nil, nil, KindFood, false},
		{"electronics only", nil, &id, nil, KindElectronics, false},
		{"grocery only", nil, nil, &id, KindGrocery, false},
		{"none set", nil, nil, nil, "", true},
		{"two set", &id, &other, nil, "", true},
		{"all set", &id, &other, &id, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ItemRefFromIDs(tt.food, tt.electronics, tt.grocery)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidItemRef)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, ref.Kind())
			assert.Equal(t, int64(7), ref.ID())
		})
	}
}

func TestItemRefFromIDs_NonPositiveID(t *testing.T) {
	zero := int64(0)

	_, err := ItemRefFromIDs(&zero, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidItemRef)
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range []OrderStatus{StatusReceived, StatusPreparing, StatusOutForDelivery, StatusDelivered} {
		assert.True(t, status.IsValid(), status.String())
	}

	assert.False(t, OrderStatus("COOKING").IsValid())
	assert.False(t, OrderStatus("received").IsValid())
}
