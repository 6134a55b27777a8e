package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/careerpath/internal/domain/errors"
	"github.com/polkiloo/careerpath/internal/domain/model"
	"github.com/polkiloo/careerpath/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
// Emails are keyed in normalized form, mirroring the unique index of the real store.
type UserRepositoryStub struct {
	mu       sync.Mutex
	users    map[string]*model.User
	byID     map[string]*model.User
	Err      error
	CreateFn func(context.Context, string, string, string) (*model.User, error)
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		users: make(map[string]*model.User),
		byID:  make(map[string]*model.User),
	}
}

// Create registers user unless the normalized email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, email, passwordHash)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.init()
	key := model.NormalizeEmail(email)
	if _, exists := s.users[key]; exists {
		return nil, domainErrors.ErrDuplicateEmail
	}
	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        key,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[key] = user
	s.byID[user.ID] = user
	return clone(user), nil
}

// GetByEmail fetches user by normalized email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.users[model.NormalizeEmail(email)]; ok {
		return clone(user), nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.byID[id]; ok {
		return clone(user), nil
	}
	return nil, domainErrors.ErrNotFound
}

// Count returns number of stored users.
func (s *UserRepositoryStub) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.byID)), nil
}

// Delete removes a user, simulating an account disappearing after token issue.
func (s *UserRepositoryStub) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.byID[id]; ok {
		delete(s.users, user.Email)
		delete(s.byID, id)
	}
}

// SetErr makes every subsequent call fail with err.
func (s *UserRepositoryStub) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

func (s *UserRepositoryStub) init() {
	if s.users == nil {
		s.users = make(map[string]*model.User)
	}
	if s.byID == nil {
		s.byID = make(map[string]*model.User)
	}
}

func clone(u *model.User) *model.User {
	c := *u
	return &c
}

// ProfileCacheStub is an in-memory profile cache.
type ProfileCacheStub struct {
	mu     sync.Mutex
	Items  map[string]model.User
	GetErr error
	SetErr error
	Gets   int
	Sets   int
}

// Get returns cached profile when present.
func (s *ProfileCacheStub) Get(ctx context.Context, id string) (*model.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Gets++
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	u, ok := s.Items[id]
	if !ok {
		return nil, false, nil
	}
	return &u, true, nil
}

// Set stores profile.
func (s *ProfileCacheStub) Set(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sets++
	if s.SetErr != nil {
		return s.SetErr
	}
	if s.Items == nil {
		s.Items = make(map[string]model.User)
	}
	s.Items[u.ID] = *u
	return nil
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)
var _ repository.ProfileCache = (*ProfileCacheStub)(nil)
