package output

import "context"

// SnapshotStorage interface - Output port
// Defines the durable storage a cart is mirrored to. Each cart lives under a
// single named entry holding the JSON array of its line items.
type SnapshotStorage interface {
	// Get returns the raw entry stored under key.
	// A missing entry is reported as (nil, nil), not as an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the entry stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the entry. Deleting a missing entry is not an error.
	Delete(ctx context.Context, key string) error
}
