package store

// Bundle builder steps, carried through the persisted snapshot so the client
// can resume where it left off.
const (
	StepSelection = "selection"
	StepReview    = "review"
	StepCheckout  = "checkout"
)

// Constraint is the [min, max] unit-count window a custom bundle must land in
// before it can be checked out. It is a soft gate: the store itself accepts
// any mutation, validity is a read-only derived check layered on top.
type Constraint struct {
	MinItems int
	MaxItems int
}

// Valid reports whether count falls within the inclusive bounds.
func (c Constraint) Valid(count int) bool {
	return count >= c.MinItems && count <= c.MaxItems
}

// Deficit returns how many units must still be added to reach MinItems,
// zero if the minimum is already met.
func (c Constraint) Deficit(count int) int {
	if count < c.MinItems {
		return c.MinItems - count
	}
	return 0
}

// Surplus returns how many units must be removed to get back under MaxItems,
// zero if within the limit.
func (c Constraint) Surplus(count int) int {
	if count > c.MaxItems {
		return count - c.MaxItems
	}
	return 0
}

// CanAdd reports whether n more units fit under MaxItems.
func (c Constraint) CanAdd(count, n int) bool {
	return count+n <= c.MaxItems
}
