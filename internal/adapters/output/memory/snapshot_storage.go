package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/ports/output"
)

// Compile-time check to ensure SnapshotStorage implements output.SnapshotStorage
var _ output.SnapshotStorage = (*SnapshotStorage)(nil)

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e *entry) isExpired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// SnapshotStorage struct - Output adapter keeping cart snapshots in process memory
// Uses sync.Map for concurrent access. Entries written with a positive ttl
// expire and are removed lazily on the next read.
type SnapshotStorage struct {
	entries sync.Map
	ttl     time.Duration
	now     func() time.Time
}

// NewSnapshotStorage creates an in-memory snapshot storage.
// ttl: lifetime of an entry after its last write, zero keeps entries forever
func NewSnapshotStorage(ttl time.Duration) *SnapshotStorage {
	return &SnapshotStorage{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns a copy of the entry, or nil when it is missing or expired
func (m *SnapshotStorage) Get(ctx context.Context, key string) ([]byte, error) {
	value, exists := m.entries.Load(key)
	if !exists {
		return nil, nil
	}

	e, ok := value.(*entry)
	if !ok {
		m.entries.Delete(key)
		return nil, nil
	}

	// Lazy cleanup
	if e.isExpired(m.now()) {
		m.entries.Delete(key)
		return nil, nil
	}

	return append([]byte(nil), e.value...), nil
}

// Set stores a copy of value under key and restarts its ttl
func (m *SnapshotStorage) Set(ctx context.Context, key string, value []byte) error {
	e := &entry{value: append([]byte(nil), value...)}
	if m.ttl > 0 {
		e.expiresAt = m.now().Add(m.ttl)
	}
	m.entries.Store(key, e)
	return nil
}

// Delete removes the entry. Deleting a missing entry is not an error.
func (m *SnapshotStorage) Delete(ctx context.Context, key string) error {
	m.entries.Delete(key)
	return nil
}
