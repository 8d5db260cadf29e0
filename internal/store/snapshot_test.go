package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := New()
	s.AddItem(ItemSnapshot{ProductID: "a", SKU: "SKU-1", Name: "Candle", ImageURL: "https://cdn/x.webp", UnitPrice: 450, Type: "product"}, 2)
	s.AddItem(ItemSnapshot{ProductID: "b", Name: "Mug", UnitPrice: 900, Type: "product"}, 1)

	data, err := Encode(s, StepReview)
	require.NoError(t, err)

	restored, step := Decode(data)
	assert.Equal(t, s.Items(), restored.Items())
	assert.Equal(t, StepReview, step)

	// Derived fields are recomputed, not persisted.
	assert.Equal(t, 1800.0, restored.Total())
	assert.Equal(t, 3, restored.ItemCount())
}

func TestDecodeCorruptDataYieldsEmptyStore(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		{},
		[]byte("not json at all"),
		[]byte(`{"items": "nope"}`),
		[]byte(`[1,2,3`),
	} {
		s, step := Decode(data)
		assert.Equal(t, 0, s.Len(), "input %q", data)
		assert.Equal(t, 0.0, s.Total())
		assert.Equal(t, StepSelection, step)
	}
}

func TestDecodeNormalizesLegacyPayloads(t *testing.T) {
	// Older clients could persist duplicate lines and zero quantities.
	data := []byte(`{"items":[
		{"productId":"a","price":100,"quantity":2},
		{"productId":"a","price":100,"quantity":1},
		{"productId":"b","price":50,"quantity":0},
		{"productId":"","price":10,"quantity":1}
	],"step":"weird"}`)

	s, step := Decode(data)
	require.Equal(t, 2, s.Len())

	a, _ := s.Get("a")
	assert.Equal(t, 3, a.Quantity, "duplicates merged by summing quantities")

	b, _ := s.Get("b")
	assert.Equal(t, 1, b.Quantity, "zero quantity normalized to 1")

	assert.Equal(t, StepSelection, step, "unknown step falls back to selection")
}

func TestMemorySnapshots(t *testing.T) {
	ctx := context.Background()
	m := NewMemorySnapshots(time.Minute)

	_, found, err := m.Load(ctx, ScopeCart, "sess-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Save(ctx, ScopeCart, "sess-1", []byte(`{"items":[]}`)))

	data, found, err := m.Load(ctx, ScopeCart, "sess-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"items":[]}`, string(data))

	// Scopes are independent.
	_, found, _ = m.Load(ctx, ScopeBundle, "sess-1")
	assert.False(t, found)

	require.NoError(t, m.Delete(ctx, ScopeCart, "sess-1"))
	_, found, _ = m.Load(ctx, ScopeCart, "sess-1")
	assert.False(t, found)
}
