package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/careerpath/internal/domain/repository"
	pkgAuth "github.com/polkiloo/careerpath/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewResumeUseCase,
	NewCareerUseCase,
)

type authParams struct {
	fx.In

	Users  repository.UserRepository
	Hasher pkgAuth.PasswordHasher
	Tokens pkgAuth.Strategy
	Cache  repository.ProfileCache `optional:"true"`
	Events EventSink               `optional:"true"`
	Logger *slog.Logger
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.Hasher, p.Tokens).
		WithProfileCache(p.Cache).
		WithEvents(p.Events).
		WithLogger(p.Logger)
}
