package bootstrap

import (
	"context"

	"clinicbook/internal/infra/redisclient"
	"clinicbook/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewLeaderLocker,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := redisclient.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewLeaderLocker(client *redis.Client, cfg config.Config) redisclient.LeaderLocker {
	return redisclient.NewLeaderLocker(client, cfg.Sweeper.LockTTL)
}
