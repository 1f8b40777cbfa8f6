package ports

import "context"

// KeyValueStore is durable single-user storage for small string values.
// Get returns an error wrapping domain.ErrKeyNotFound when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
