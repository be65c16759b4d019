package repository

import (
	"context"
	"time"
)

// CacheRepository stores opaque values with a TTL. A cache miss is (nil, nil).
type CacheRepository interface {
	// Get returns the cached value for key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key
	Delete(ctx context.Context, key string) error

	// Exists reports whether key is present
	Exists(ctx context.Context, key string) (bool, error)
}
