package redis

import (
	"context"
	"errors"
	"time"

	"storefront/internal/ports/output"

	goredis "github.com/go-redis/redis/v8"
)

// Compile-time check to ensure SnapshotStorage implements output.SnapshotStorage
var _ output.SnapshotStorage = (*SnapshotStorage)(nil)

// SnapshotStorage struct - Output adapter storing cart snapshots as redis strings
type SnapshotStorage struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// NewSnapshotStorage func - ttl of zero keeps entries until they are deleted
func NewSnapshotStorage(client goredis.UniversalClient, ttl time.Duration) *SnapshotStorage {
	return &SnapshotStorage{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the stored snapshot, or (nil, nil) when the key does not exist
func (s *SnapshotStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set writes the snapshot and refreshes its expiry
func (s *SnapshotStorage) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, s.ttl).Err()
}

// Delete removes the key. Redis treats a missing key as a no-op.
func (s *SnapshotStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
