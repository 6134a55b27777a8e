package redis

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/careerpath/internal/config"
	"github.com/polkiloo/careerpath/internal/domain/repository"
)

// Module provides the optional profile cache. Without REDIS_ADDR it resolves to nil.
var Module = fx.Provide(newProfileCache)

type cacheParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newProfileCache(p cacheParams) (repository.ProfileCache, error) {
	if p.Config.RedisAddr == "" {
		p.Logger.Info("profile cache disabled")
		return nil, nil
	}

	client, err := Connect(p.Ctx, p.Config.RedisAddr, p.Config.RedisPassword, p.Config.RedisDB)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	p.Logger.Info("profile cache enabled", slog.String("addr", p.Config.RedisAddr))
	return NewProfileCache(client, p.Config.ProfileCacheTTL), nil
}
