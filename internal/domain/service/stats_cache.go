package service

import (
	"context"
	"time"
)

// StatsCache memoizes dashboard rollups for a short time.
type StatsCache interface {
	// Get decodes a cached value into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
