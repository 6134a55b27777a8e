package auth

import (
	"fmt"

	"github.com/polkiloo/careerpath/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newPasswordHasher(p strategyParams) PasswordHasher {
	return NewBcryptHasher(p.Config.PasswordHashCost)
}

func newTokenStrategy(p strategyParams) (Strategy, error) {
	opts := Options{TTL: p.Config.TokenTTL}
	switch p.Config.TokenStrategy {
	case "", config.TokenStrategyJWT:
		return NewJWTStrategy(p.Config.JWTSecret, opts), nil
	case config.TokenStrategyHMAC:
		return NewHMACStrategy(p.Config.JWTSecret, opts), nil
	default:
		return nil, fmt.Errorf("unknown token strategy %q", p.Config.TokenStrategy)
	}
}
