// Package bootstrap builds the provider and cache selected by configuration. Both the
// HTTP service and the operator CLI start from here.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/branch-finder/internal/config"
	"github.com/branch-finder/internal/domain/repository"
	"github.com/branch-finder/internal/infrastructure/filialfinder"
	"github.com/branch-finder/internal/repository/cache"
	"github.com/branch-finder/internal/repository/memory"
	"github.com/branch-finder/internal/repository/postgres"
)

// CloseFunc releases resources held by a constructed dependency.
type CloseFunc func() error

func noopClose() error { return nil }

// HealthFunc reports whether a backing service is reachable.
type HealthFunc func(ctx context.Context) error

// Provider is a constructed LocationProvider and what it depends on.
type Provider struct {
	repository.LocationProvider
	Mode   string
	Health HealthFunc
	Close  CloseFunc
}

// NewLocationProvider builds the provider named by cfg.Provider.Mode.
func NewLocationProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Provider, error) {
	switch cfg.Provider.Mode {
	case config.ProviderMock:
		logger.Info("Using in-memory location provider")
		return &Provider{
			LocationProvider: memory.NewProvider(),
			Mode:             cfg.Provider.Mode,
			Close:            noopClose,
		}, nil

	case config.ProviderRemote:
		logger.Info("Using FilialFinder location provider",
			zap.String("base_url", cfg.Provider.BaseURL),
			zap.String("blz", cfg.Provider.BLZ),
			zap.Duration("timeout", cfg.Provider.RequestTimeout),
		)
		return &Provider{
			LocationProvider: filialfinder.NewClient(&cfg.Provider, logger),
			Mode:             cfg.Provider.Mode,
			Close:            noopClose,
		}, nil

	case config.ProviderPostgres:
		db, err := postgres.New(&cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Provider{
			LocationProvider: postgres.NewLocationProvider(db, cfg.Provider.BLZ),
			Mode:             cfg.Provider.Mode,
			Health:           db.Health,
			Close:            db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown provider mode %q", cfg.Provider.Mode)
	}
}

// Cache is the response cache and its lifecycle hooks.
type Cache struct {
	repository.CacheRepository
	Health HealthFunc
	Close  CloseFunc
}

// NewCache connects to Redis when enabled and falls back to a no-op cache otherwise.
// A configured but unreachable Redis is an error.
func NewCache(cfg *config.Config, logger *zap.Logger) (*Cache, error) {
	if !cfg.Redis.Enabled {
		logger.Info("Response cache disabled")
		return &Cache{CacheRepository: cache.NoopCache{}, Close: noopClose}, nil
	}

	r, err := cache.NewRedis(&cfg.Redis, logger)
	if err != nil {
		return nil, err
	}
	return &Cache{
		CacheRepository: cache.NewCacheRepository(r),
		Health:          r.Health,
		Close:           r.Close,
	}, nil
}
