package ports

import "context"

// KeyValueStore is a durable key-value slot store.
// Values are opaque bytes written and read whole.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}
