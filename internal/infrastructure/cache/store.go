package cache

import (
	"context"
	"time"
)

// Store is a small key-value cache with expiration. The auth service
// uses it to short-circuit session lookups; entries are advisory and the
// database stays the source of truth.
type Store interface {
	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key, value string, expiration time.Duration) error

	// Get retrieves a value by key; found is false when absent or expired
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Delete removes a key
	Delete(ctx context.Context, key string) error
}
