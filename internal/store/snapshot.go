package store

import (
	"context"

	"github.com/goccy/go-json"
)

// Snapshot scopes. Cart and bundle state live under independent keys so one
// can be cleared without touching the other.
const (
	ScopeCart   = "cart"
	ScopeBundle = "bundle"
)

// Snapshot is the minimal reconstructable state persisted between requests:
// the lines and, for bundles, the builder step. Derived totals are never
// persisted; they are recomputed on load.
type Snapshot struct {
	Items []LineItem `json:"items"`
	Step  string     `json:"step,omitempty"`
}

// SnapshotStore persists serialized snapshots per (scope, session) pair.
// Implementations are best-effort session continuity, not durable storage.
type SnapshotStore interface {
	Load(ctx context.Context, scope, sessionID string) ([]byte, bool, error)
	Save(ctx context.Context, scope, sessionID string, data []byte) error
	Delete(ctx context.Context, scope, sessionID string) error
}

// Encode serializes the store's lines (plus an optional step marker).
func Encode(s *Store, step string) ([]byte, error) {
	return json.Marshal(Snapshot{Items: s.Items(), Step: step})
}

// Decode rebuilds a store from persisted bytes. Corrupt or empty input
// yields an empty store and the selection step; loading must never fail the
// request. Duplicate product IDs in old payloads are merged by summing
// quantities, non-positive quantities are normalized to 1.
func Decode(data []byte) (*Store, string) {
	s := New()
	if len(data) == 0 {
		return s, StepSelection
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return New(), StepSelection
	}

	for _, item := range snap.Items {
		if item.ProductID == "" {
			continue
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		s.AddItem(ItemSnapshot{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			UnitPrice: item.UnitPrice,
			Type:      item.Type,
		}, qty)
	}

	step := snap.Step
	switch step {
	case StepSelection, StepReview, StepCheckout:
	default:
		step = StepSelection
	}
	return s, step
}
