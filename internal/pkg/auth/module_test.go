package auth

import (
	"testing"
	"time"

	"github.com/polkiloo/careerpath/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher(strategyParams{Config: &config.Config{PasswordHashCost: bcrypt.MinCost}})
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != bcrypt.MinCost {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}
}

func TestNewTokenStrategy_DefaultsToJWT(t *testing.T) {
	strategy, err := newTokenStrategy(strategyParams{Config: &config.Config{JWTSecret: "top-secret", TokenTTL: time.Hour}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	jwtStrategy, ok := strategy.(*JWTStrategy)
	if !ok {
		t.Fatalf("expected *JWTStrategy, got %T", strategy)
	}
	if string(jwtStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(jwtStrategy.secret))
	}
	if jwtStrategy.ttl != time.Hour {
		t.Fatalf("unexpected ttl: %s", jwtStrategy.ttl)
	}
}

func TestNewTokenStrategy_HMAC(t *testing.T) {
	strategy, err := newTokenStrategy(strategyParams{Config: &config.Config{
		JWTSecret:     "top-secret",
		TokenStrategy: config.TokenStrategyHMAC,
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hmacStrategy, ok := strategy.(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if hmacStrategy.ttl != 30*24*time.Hour {
		t.Fatalf("unexpected ttl: %s", hmacStrategy.ttl)
	}
}

func TestNewTokenStrategy_Unknown(t *testing.T) {
	if _, err := newTokenStrategy(strategyParams{Config: &config.Config{TokenStrategy: "rot13"}}); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
