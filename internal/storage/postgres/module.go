package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/careerpath/internal/config"
	"github.com/polkiloo/careerpath/internal/domain/repository"
)

// Module wires the PostgreSQL credential store. The pool is migrated at construction
// and closed after the HTTP server has drained.
var Module = fx.Options(
	fx.Provide(
		newStorage,
		func(s *Storage) repository.Factory { return s },
		func(f repository.Factory) repository.UserRepository { return f.Users() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	storage, err := New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		p.Logger.Error("credential store unavailable", slog.String("error", err.Error()))
		return nil, err
	}
	return storage, nil
}

type lifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Storage   *Storage
	Logger    *slog.Logger
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			p.Storage.Close()
			p.Logger.Info("credential store closed")
			return nil
		},
	})
}
