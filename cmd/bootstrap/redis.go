package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"luxstay-api/internal/infra/lock"
	"luxstay-api/internal/pkg/config"
	"luxstay-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRoomLocker,
	),
)

// NewRoomLocker returns a no-op locker when REDIS_URL is unset; bookings then
// rely on the in-transaction overlap check alone.
func NewRoomLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.RoomLocker, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("Redis not configured, room booking lock disabled")
		return lock.NoopLocker{}, nil
	}

	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("Room booking lock enabled", "addr", opt.Addr, "ttl", cfg.Redis.LockTTL, "wait", cfg.Redis.LockWait)
	return lock.NewRedisRoomLocker(client, cfg.Redis), nil
}
