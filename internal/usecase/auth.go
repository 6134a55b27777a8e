package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/careerpath/internal/domain/errors"
	"github.com/polkiloo/careerpath/internal/domain/model"
	"github.com/polkiloo/careerpath/internal/domain/repository"
	pkgAuth "github.com/polkiloo/careerpath/internal/pkg/auth"
)

var validate = validator.New()

const (
	minPasswordLength = 6
	// bcrypt ignores input beyond 72 bytes and x/crypto rejects it.
	maxPasswordBytes = 72
)

// EventSink accepts domain events for asynchronous delivery.
type EventSink interface {
	Enqueue(event model.UserRegistered) bool
}

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	cache  repository.ProfileCache
	events EventSink
	logger *slog.Logger
	now    func() time.Time
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{
		users:  users,
		hasher: hasher,
		tokens: strategy,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
}

// WithProfileCache enables read-through caching of profiles.
func (u *AuthUseCase) WithProfileCache(cache repository.ProfileCache) *AuthUseCase {
	u.cache = cache
	return u
}

// WithEvents enables UserRegistered notifications.
func (u *AuthUseCase) WithEvents(events EventSink) *AuthUseCase {
	u.events = events
	return u
}

// WithLogger replaces the discarding default logger.
func (u *AuthUseCase) WithLogger(logger *slog.Logger) *AuthUseCase {
	if logger != nil {
		u.logger = logger
	}
	return u
}

// Register creates a new user and returns its public fields with a fresh token.
func (u *AuthUseCase) Register(ctx context.Context, in model.Registration) (*model.AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := model.NormalizeEmail(in.Email)
	if err := validateRegistration(name, email, in.Password); err != nil {
		return nil, err
	}

	_, err := u.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainErrors.ErrDuplicateEmail
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, name, email, hash)
	if err != nil {
		return nil, err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, err
	}

	if u.events != nil {
		u.events.Enqueue(model.NewUserRegistered(usr, u.now()))
	}
	u.logger.InfoContext(ctx, "user registered", slog.String("user_id", usr.ID))

	return authResult(usr, token), nil
}

// Login validates credentials and returns the user's public fields with a fresh token.
// Unknown email and wrong password are reported identically.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.AuthResult, error) {
	email = model.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.hasher.Verify(usr.PasswordHash, password) {
		return nil, domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, err
	}

	return authResult(usr, token), nil
}

// ParseToken extracts the user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", domainErrors.ErrAuthRequired
	}
	return u.tokens.ParseToken(token)
}

// Profile resolves the user owning token. The returned user never carries the password hash.
func (u *AuthUseCase) Profile(ctx context.Context, token string) (*model.User, error) {
	id, err := u.ParseToken(token)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		cached, ok, err := u.cache.Get(ctx, id)
		if err != nil {
			u.logger.WarnContext(ctx, "profile cache read failed", slog.String("error", err.Error()))
		} else if ok {
			return cached, nil
		}
	}

	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, err
	}

	profile := *usr
	profile.PasswordHash = ""

	if u.cache != nil {
		if err := u.cache.Set(ctx, &profile); err != nil {
			u.logger.WarnContext(ctx, "profile cache write failed", slog.String("error", err.Error()))
		}
	}

	return &profile, nil
}

// UserCount reports how many accounts exist.
func (u *AuthUseCase) UserCount(ctx context.Context) (int64, error) {
	return u.users.Count(ctx)
}

func validateRegistration(name, email, password string) error {
	switch {
	case name == "":
		return domainErrors.NewValidationError("name", "is required")
	case email == "":
		return domainErrors.NewValidationError("email", "is required")
	case password == "":
		return domainErrors.NewValidationError("password", "is required")
	}

	if err := validate.Var(email, "required,email"); err != nil {
		return domainErrors.NewValidationError("email", "is not a valid email address")
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		return domainErrors.NewValidationError("password", "must be at least 6 characters")
	}
	if len(password) > maxPasswordBytes {
		return domainErrors.NewValidationError("password", "must be at most 72 bytes")
	}

	return nil
}

func authResult(usr *model.User, token string) *model.AuthResult {
	return &model.AuthResult{ID: usr.ID, Name: usr.Name, Email: usr.Email, Token: token}
}
