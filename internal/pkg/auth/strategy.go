package auth

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidToken     = errors.New("invalid auth token")
	ErrInvalidSignature = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)
	ErrTokenExpired     = fmt.Errorf("%w: token expired", ErrInvalidToken)
	ErrMalformedToken   = fmt.Errorf("%w: malformed token", ErrInvalidToken)
)

// Strategy issues and verifies stateless session tokens bound to a subject.
type Strategy interface {
	IssueToken(subject string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
	Now func() time.Time
}

const defaultTTL = 30 * 24 * time.Hour

func (o Options) withDefaults() Options {
	if o.TTL <= 0 {
		o.TTL = defaultTTL
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
