package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/careerpath/internal/adapter/events"
	"github.com/polkiloo/careerpath/internal/adapter/resumeparser"
	"github.com/polkiloo/careerpath/internal/app"
	"github.com/polkiloo/careerpath/internal/config"
	"github.com/polkiloo/careerpath/internal/logger"
	"github.com/polkiloo/careerpath/internal/pkg/auth"
	"github.com/polkiloo/careerpath/internal/server/http/handlers"
	"github.com/polkiloo/careerpath/internal/server/http/router"
	"github.com/polkiloo/careerpath/internal/storage/postgres"
	"github.com/polkiloo/careerpath/internal/storage/redis"
	"github.com/polkiloo/careerpath/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		redis.Module,
		events.Module,
		resumeparser.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.PlatformFacade) handlers.PlatformFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
