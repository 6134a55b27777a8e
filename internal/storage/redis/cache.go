package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/polkiloo/careerpath/internal/domain/model"
)

const keyPrefix = "careerpath:profile:"

type kvClient interface {
	Get(ctx context.Context, key string) *redisv9.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redisv9.StatusCmd
}

// cachedProfile mirrors the public fields of model.User. The password hash is never cached.
type cachedProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileCache keeps public user profiles in Redis.
type ProfileCache struct {
	client kvClient
	ttl    time.Duration
}

// NewProfileCache builds ProfileCache over client with entries expiring after ttl.
func NewProfileCache(client kvClient, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProfileCache{client: client, ttl: ttl}
}

func (c *ProfileCache) Get(ctx context.Context, id string) (*model.User, bool, error) {
	raw, err := c.client.Get(ctx, profileKey(id)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get profile: %w", err)
	}

	var p cachedProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached profile: %w", err)
	}
	return &model.User{ID: p.ID, Name: p.Name, Email: p.Email, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}, true, nil
}

func (c *ProfileCache) Set(ctx context.Context, u *model.User) error {
	payload, err := json.Marshal(cachedProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := c.client.Set(ctx, profileKey(u.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set profile: %w", err)
	}
	return nil
}

func profileKey(id string) string {
	return keyPrefix + id
}
