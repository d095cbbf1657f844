// internal/domain/cart/service_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func napa() AddRequest {
	return AddRequest{ID: "m1", Name: "Napa", Price: 10, Image: "x"}
}

func TestAddMergesByID(t *testing.T) {
	store := NewStore()

	store.Add(napa())
	store.Add(napa())

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "m1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(20), store.Totals(0).SubTotal)
	assert.Equal(t, 2, store.Count())
}

func TestAddQuantityEqualsCallCount(t *testing.T) {
	store := NewStore()
	const calls = 7

	for i := 0; i < calls; i++ {
		store.Add(napa())
	}

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, calls, items[0].Quantity)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	store := NewStore()

	store.Add(napa())
	store.Add(AddRequest{ID: "m3", Name: "Seclo", Price: 80})
	store.Add(napa())

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "m1", items[0].ID)
	assert.Equal(t, "m3", items[1].ID)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantLen  int
		wantQty  int
	}{
		{name: "positive sets quantity", quantity: 5, wantLen: 1, wantQty: 5},
		{name: "zero removes line", quantity: 0, wantLen: 0},
		{name: "negative removes line", quantity: -1, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			store.Add(napa())

			store.UpdateQuantity("m1", tt.quantity)

			items := store.Items()
			require.Len(t, items, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantQty, items[0].Quantity)
			}
		})
	}
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	store := NewStore()
	store.Add(napa())

	store.UpdateQuantity("missing", 3)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestTotalsRecomputedAfterRemoval(t *testing.T) {
	store := NewStore()
	store.Add(napa())
	store.Add(AddRequest{ID: "m3", Name: "Seclo", Price: 80, Quantity: 2})

	assert.Equal(t, int64(170), store.Totals(0).SubTotal)

	store.Remove("m3")

	totals := store.Totals(0)
	assert.Equal(t, int64(10), totals.SubTotal)
	assert.Equal(t, 1, totals.TotalQuantity)
	assert.Equal(t, 1, store.Count())
}

func TestClear(t *testing.T) {
	store := NewStore()
	store.Add(napa())
	store.Add(AddRequest{ID: "m2", Name: "Ace", Price: 12})

	store.Clear()

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.Count())
	assert.Equal(t, int64(0), store.Totals(50).TotalAmount)
}

func TestDeliveryFeeOnlyOnNonEmptyCart(t *testing.T) {
	store := NewStore()
	assert.Equal(t, int64(0), store.Totals(50).DeliveryFee)

	store.Add(napa())
	totals := store.Totals(50)
	assert.Equal(t, int64(50), totals.DeliveryFee)
	assert.Equal(t, int64(60), totals.TotalAmount)
}
