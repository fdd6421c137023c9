// Package cache holds the dashboard statistics cache.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"vacuum/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vacuum:stats:"

// redisStatsCache stores JSON encoded values under a namespaced key.
type redisStatsCache struct {
	client redis.Cmdable
}

// NewRedisStatsCache wraps a connected client.
func NewRedisStatsCache(client redis.Cmdable) service.StatsCache {
	return &redisStatsCache{client: client}
}

func (c *redisStatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to read cache key %s", key)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode cache key %s", key)
	}

	return true, nil
}

func (c *redisStatsCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode cache key %s", key)
	}

	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write cache key %s", key)
	}

	return nil
}

// noopStatsCache always misses.
type noopStatsCache struct{}

func (noopStatsCache) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (noopStatsCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}
