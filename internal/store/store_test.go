package store

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(id string, price float64) ItemSnapshot {
	return ItemSnapshot{ProductID: id, Name: "item " + id, UnitPrice: price, Type: "product"}
}

func TestAddItemMergesExistingLine(t *testing.T) {
	s := New()

	s.AddItem(snap("a", 100), 1)
	assert.Equal(t, 100.0, s.Total())
	assert.Equal(t, 1, s.ItemCount())

	s.AddItem(snap("a", 100), 2)
	require.Equal(t, 1, s.Len(), "adding an existing product must not duplicate the line")

	line, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, 300.0, s.Total())
	assert.Equal(t, 3, s.ItemCount())

	s.RemoveItem("a")
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0.0, s.Total())
	assert.Equal(t, 0, s.ItemCount())
}

func TestAddItemKeepsPriceSnapshot(t *testing.T) {
	s := New()
	s.AddItem(snap("a", 100), 1)

	// A later add with a changed catalog price must not rewrite the line's
	// snapshot; the first-seen price stays.
	s.AddItem(snap("a", 250), 1)

	line, _ := s.Get("a")
	assert.Equal(t, 100.0, line.UnitPrice)
	assert.Equal(t, 200.0, s.Total())
}

func TestRemoveItemIdempotent(t *testing.T) {
	s := New()
	s.AddItem(snap("a", 50), 2)
	s.AddItem(snap("b", 30), 1)

	s.RemoveItem("a")
	afterOnce := s.Items()

	s.RemoveItem("a")
	assert.Equal(t, afterOnce, s.Items())
	assert.Equal(t, 30.0, s.Total())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := New()
	s.AddItem(snap("a", 10), 1)
	s.RemoveItem("zzz")
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 10.0, s.Total())
}

func TestUpdateQuantityBoundaries(t *testing.T) {
	s := New()
	s.AddItem(snap("a", 10), 3)

	s.UpdateQuantity("a", 7)
	line, _ := s.Get("a")
	assert.Equal(t, 7, line.Quantity, "absolute set, not delta")

	s.UpdateQuantity("a", 0)
	_, ok := s.Get("a")
	assert.False(t, ok, "quantity 0 removes the line")

	s.AddItem(snap("a", 10), 1)
	s.UpdateQuantity("a", -5)
	_, ok = s.Get("a")
	assert.False(t, ok, "negative quantity removes the line")

	// Absent product: no-op
	s.UpdateQuantity("ghost", 5)
	assert.Equal(t, 0, s.Len())
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := New()
	s.AddItem(snap("a", 1), 1)
	s.AddItem(snap("b", 1), 1)
	s.AddItem(snap("c", 1), 1)

	ids := func() []string {
		items := s.Items()
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = it.ProductID
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids())

	// Removing and re-adding moves the product to the end.
	s.RemoveItem("a")
	s.AddItem(snap("a", 1), 1)
	assert.Equal(t, []string{"b", "c", "a"}, ids())
}

func TestClear(t *testing.T) {
	s := New()
	s.AddItem(snap("a", 99), 4)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0.0, s.Total())
	assert.Equal(t, 0, s.ItemCount())
}

// Derived totals must equal a fresh recomputation from the lines after any
// sequence of mutations, and no line may ever hold quantity < 1 or share a
// product ID with another line.
func TestDerivedTotalsNeverDrift(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := New()
	products := []string{"p1", "p2", "p3", "p4", "p5"}

	check := func() {
		var wantTotal float64
		var wantCount int
		seen := map[string]bool{}
		for _, item := range s.Items() {
			require.GreaterOrEqual(t, item.Quantity, 1)
			require.False(t, seen[item.ProductID], "duplicate line for %s", item.ProductID)
			seen[item.ProductID] = true
			wantTotal += item.UnitPrice * float64(item.Quantity)
			wantCount += item.Quantity
		}
		require.Equal(t, wantTotal, s.Total())
		require.Equal(t, wantCount, s.ItemCount())
	}

	for i := 0; i < 1000; i++ {
		id := products[rng.Intn(len(products))]
		switch rng.Intn(4) {
		case 0:
			s.AddItem(snap(id, float64(rng.Intn(500))), rng.Intn(3)+1)
		case 1:
			s.RemoveItem(id)
		case 2:
			s.UpdateQuantity(id, rng.Intn(12)-2)
		case 3:
			if rng.Intn(20) == 0 {
				s.Clear()
			}
		}
		check()
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	s := New()
	s.AddItem(snap("a", 10), 1)

	items := s.Items()
	items[0].Quantity = 99

	line, _ := s.Get("a")
	assert.Equal(t, 1, line.Quantity, "mutating the returned slice must not affect the store")
}
