package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopStatsCache(t *testing.T) {
	cache := noopStatsCache{}

	require.NoError(t, cache.Set(context.Background(), "dashboard", map[string]int{"a": 1}, time.Minute))

	var dest map[string]int
	hit, err := cache.Get(context.Background(), "dashboard", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, dest)
}

func TestRedisStatsCache_UnreachableServerReportsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewRedisStatsCache(client)

	var dest map[string]int
	hit, err := cache.Get(context.Background(), "dashboard", &dest)
	assert.Error(t, err)
	assert.False(t, hit)

	assert.Error(t, cache.Set(context.Background(), "dashboard", map[string]int{"a": 1}, time.Minute))
}
