package cache

import (
	"context"
	"time"
)

// NullCache is a cache that never stores anything, so every conversion and
// render runs from scratch. It backs the CLI's --no-cache flag and the
// cache.disabled config setting, and is what the pipeline runner falls
// back to when constructed without a cache.
type NullCache struct{}

// NewNullCache creates a cache that discards everything.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always reports a miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the payload.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
