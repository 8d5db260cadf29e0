package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintInclusiveBounds(t *testing.T) {
	c := Constraint{MinItems: 5, MaxItems: 20}

	assert.False(t, c.Valid(4))
	assert.True(t, c.Valid(5))
	assert.True(t, c.Valid(20))
	assert.False(t, c.Valid(21))
	assert.False(t, c.Valid(0))
}

func TestConstraintGuidance(t *testing.T) {
	c := Constraint{MinItems: 5, MaxItems: 20}

	assert.Equal(t, 5, c.Deficit(0))
	assert.Equal(t, 1, c.Deficit(4))
	assert.Equal(t, 0, c.Deficit(5))
	assert.Equal(t, 0, c.Deficit(20))

	assert.Equal(t, 0, c.Surplus(20))
	assert.Equal(t, 1, c.Surplus(21))
	assert.Equal(t, 0, c.Surplus(3))
}

func TestConstraintCanAdd(t *testing.T) {
	c := Constraint{MinItems: 5, MaxItems: 20}

	assert.True(t, c.CanAdd(19, 1))
	assert.False(t, c.CanAdd(20, 1))
	assert.True(t, c.CanAdd(0, 20))
	assert.False(t, c.CanAdd(0, 21))
}

func TestConstraintIsSoftGate(t *testing.T) {
	c := Constraint{MinItems: 5, MaxItems: 20}
	s := New()

	// The store accepts mutations past the bounds; only validity flips.
	for i := 0; i < 4; i++ {
		s.AddItem(ItemSnapshot{ProductID: string(rune('a' + i)), UnitPrice: 10}, 1)
	}
	assert.False(t, c.Valid(s.ItemCount()))

	s.AddItem(ItemSnapshot{ProductID: "e", UnitPrice: 10}, 1)
	assert.True(t, c.Valid(s.ItemCount()))
}
