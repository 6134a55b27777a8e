package auth

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTStrategy issues HS256 JSON Web Tokens carrying the subject in the sub claim.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	opts = opts.withDefaults()
	return &JWTStrategy{secret: []byte(secret), ttl: opts.TTL, now: opts.Now}
}

// IssueToken signs a token for subject that expires after the configured TTL.
func (s *JWTStrategy) IssueToken(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("issue token: empty subject")
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken verifies signature and expiry and returns the subject.
func (s *JWTStrategy) ParseToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
		jwt.WithStrictDecoding(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenMalformed) && tamperedSignature(token):
		return "", ErrInvalidSignature
	default:
		return "", ErrMalformedToken
	}

	if claims.Subject == "" {
		return "", ErrMalformedToken
	}
	return claims.Subject, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}

// tamperedSignature reports whether a three segment token failed strict decoding only
// because of its signature's final character.
func tamperedSignature(token string) bool {
	parts := strings.Split(token, ".")
	return len(parts) == 3 && paddingBitsSet(parts[2])
}

// paddingBitsSet reports whether segment is valid base64url only when the unused
// trailing bits are ignored, i.e. a signature altered in its last character.
func paddingBitsSet(segment string) bool {
	if _, err := base64.RawURLEncoding.DecodeString(segment); err != nil {
		return false
	}
	_, err := base64.RawURLEncoding.Strict().DecodeString(segment)
	return err != nil
}
