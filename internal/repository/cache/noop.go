package cache

import (
	"context"
	"time"

	"github.com/branch-finder/internal/domain/repository"
)

// NoopCache is used when Redis is disabled: every read misses and writes are dropped.
type NoopCache struct{}

var _ repository.CacheRepository = NoopCache{}

func (NoopCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, key string) error { return nil }

func (NoopCache) Exists(ctx context.Context, key string) (bool, error) { return false, nil }
