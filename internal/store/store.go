// Package store implements the session-scoped line-item store backing both
// the shopping cart and the custom bundle builder. A Store holds an ordered
// collection of lines keyed by product ID with price snapshots taken at add
// time; totals are derived values, recomputed from the lines after every
// mutation and never written independently.
package store

// LineItem is one product entry within a store. Name, image and unit price
// are snapshots of the product at the time of adding; later catalog edits do
// not retroactively change a line.
type LineItem struct {
	ProductID string  `json:"productId"`
	SKU       string  `json:"sku,omitempty"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image,omitempty"`
	UnitPrice float64 `json:"price"`
	Type      string  `json:"type,omitempty"` // product, bundle
	Quantity  int     `json:"quantity"`
}

// ItemSnapshot carries the product fields captured when a line is created.
type ItemSnapshot struct {
	ProductID string
	SKU       string
	Name      string
	ImageURL  string
	UnitPrice float64
	Type      string
}

// Store is the canonical list of line items plus its derived totals.
// Insertion order is preserved for display; removing and re-adding a product
// moves it to the end. The zero value is an empty, usable store.
type Store struct {
	items     []LineItem
	total     float64
	itemCount int
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// recompute refreshes the derived totals from the current lines. Every
// mutation must end here; no other code path may write total or itemCount.
func (s *Store) recompute() {
	var total float64
	var count int
	for _, item := range s.items {
		total += item.UnitPrice * float64(item.Quantity)
		count += item.Quantity
	}
	s.total = total
	s.itemCount = count
}

func (s *Store) indexOf(productID string) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem adds quantity units of the product. If a line for the product
// already exists its quantity is incremented; otherwise a new line is
// appended with the given snapshot. Quantities below 1 are normalized to 1.
func (s *Store) AddItem(snap ItemSnapshot, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	if i := s.indexOf(snap.ProductID); i >= 0 {
		s.items[i].Quantity += quantity
		s.recompute()
		return
	}

	s.items = append(s.items, LineItem{
		ProductID: snap.ProductID,
		SKU:       snap.SKU,
		Name:      snap.Name,
		ImageURL:  snap.ImageURL,
		UnitPrice: snap.UnitPrice,
		Type:      snap.Type,
		Quantity:  quantity,
	})
	s.recompute()
}

// RemoveItem deletes the line for the product. Removing an absent product is
// a no-op, not an error.
func (s *Store) RemoveItem(productID string) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.recompute()
}

// UpdateQuantity sets the line's quantity to an absolute value. A quantity
// below 1 removes the line; a store never holds a zero or negative line.
// No-op if the product is absent.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		s.RemoveItem(productID)
		return
	}
	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.items[i].Quantity = quantity
	s.recompute()
}

// Clear empties the store.
func (s *Store) Clear() {
	s.items = nil
	s.recompute()
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the line for the product, if present.
func (s *Store) Get(productID string) (LineItem, bool) {
	if i := s.indexOf(productID); i >= 0 {
		return s.items[i], true
	}
	return LineItem{}, false
}

// Total is the derived sum of unit price times quantity over all lines.
func (s *Store) Total() float64 {
	return s.total
}

// ItemCount is the derived sum of quantities over all lines.
func (s *Store) ItemCount() int {
	return s.itemCount
}

// Len is the number of distinct lines.
func (s *Store) Len() int {
	return len(s.items)
}
