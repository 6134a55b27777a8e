package repository

import (
	"context"

	"github.com/polkiloo/careerpath/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Count(ctx context.Context) (int64, error)
}

// ProfileCache stores public user profiles for fast repeated lookups.
type ProfileCache interface {
	Get(ctx context.Context, id string) (*model.User, bool, error)
	Set(ctx context.Context, user *model.User) error
}
