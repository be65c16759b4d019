package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/branch-finder/internal/config"
)

// DefaultNamespace prefixes every key the service writes, so several deployments can
// share one Redis database.
const DefaultNamespace = "branch-finder:"

// The cache sits on the request path and a miss is always acceptable, so commands are
// bounded far below the provider timeout.
const (
	dialTimeout    = 2 * time.Second
	commandTimeout = 200 * time.Millisecond
)

// Redis is the response cache connection.
type Redis struct {
	client    *redis.Client
	namespace string
	logger    *zap.Logger
}

func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  commandTimeout,
		WriteTimeout: commandTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr(), err)
	}

	logger.Info("Redis response cache connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
		zap.String("namespace", DefaultNamespace),
	)

	return &Redis{
		client:    client,
		namespace: DefaultNamespace,
		logger:    logger,
	}, nil
}

func (r *Redis) key(k string) string {
	return r.namespace + k
}

// Purge deletes every cached search and detail response of this service and returns
// how many keys were removed. Keys of other namespaces are left alone.
func (r *Redis) Purge(ctx context.Context) (int64, error) {
	var removed int64
	iter := r.client.Scan(ctx, 0, r.namespace+"*", 500).Iterator()

	batch := make([]string, 0, 500)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := r.client.Del(ctx, batch...).Result()
		removed += n
		batch = batch[:0]
		return err
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := flush(); err != nil {
				return removed, fmt.Errorf("purge cache: %w", err)
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("purge cache: %w", err)
	}
	if err := flush(); err != nil {
		return removed, fmt.Errorf("purge cache: %w", err)
	}

	r.logger.Info("Response cache purged", zap.Int64("keys", removed))
	return removed, nil
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection")
	return r.client.Close()
}

func (r *Redis) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
