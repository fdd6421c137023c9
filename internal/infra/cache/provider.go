package cache

import (
	"context"
	"log/slog"
	"time"

	"vacuum/config"
	"vacuum/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingTimeout = 2 * time.Second

// StatsCacheParams holds dependencies for the statistics cache, injected by Fx
type StatsCacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStatsCache returns a Redis backed cache when a redis section is
// configured and a cache that always misses otherwise. An unreachable Redis
// at startup is logged and left to fail per call.
func NewStatsCache(params StatsCacheParams) service.StatsCache {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, statistics are not cached")

		return noopStatsCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, pingTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis ping failed, statistics cache will miss",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)

				return nil
			}
			logger.Info("Redis statistics cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisStatsCache(client)
}

// Module provides the statistics cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStatsCache),
)
