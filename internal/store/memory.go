package store

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// memorySnapshots keeps snapshots in process memory with a TTL. Used in tests
// and as a fallback when no database is configured; state does not survive a
// restart.
type memorySnapshots struct {
	cache *gocache.Cache
}

// NewMemorySnapshots returns an in-memory SnapshotStore with the given TTL.
func NewMemorySnapshots(ttl time.Duration) SnapshotStore {
	return &memorySnapshots{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func snapshotKey(scope, sessionID string) string {
	return scope + ":" + sessionID
}

func (m *memorySnapshots) Load(_ context.Context, scope, sessionID string) ([]byte, bool, error) {
	v, found := m.cache.Get(snapshotKey(scope, sessionID))
	if !found {
		return nil, false, nil
	}
	data, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

func (m *memorySnapshots) Save(_ context.Context, scope, sessionID string, data []byte) error {
	m.cache.Set(snapshotKey(scope, sessionID), data, gocache.DefaultExpiration)
	return nil
}

func (m *memorySnapshots) Delete(_ context.Context, scope, sessionID string) error {
	m.cache.Delete(snapshotKey(scope, sessionID))
	return nil
}
