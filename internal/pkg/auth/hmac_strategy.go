package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HMACStrategy implements auth token creation/verification using HMAC signatures.
// Token layout is base64url("subject:expiresUnix:signature").
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	opts = opts.withDefaults()
	return &HMACStrategy{secret: []byte(secret), ttl: opts.TTL, now: opts.Now}
}

// IssueToken generates signed auth token for the subject.
func (s *HMACStrategy) IssueToken(subject string) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("issue token: empty subject")
	}
	expires := s.now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%s:%d", subject, expires)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.RawURLEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates token and returns encoded subject.
func (s *HMACStrategy) ParseToken(token string) (string, error) {
	raw, err := base64.RawURLEncoding.Strict().DecodeString(token)
	if err != nil {
		// The final character of the token encodes the tail of the signature.
		if paddingBitsSet(token) {
			return "", ErrInvalidSignature
		}
		return "", ErrMalformedToken
	}

	sigAt := strings.LastIndexByte(string(raw), ':')
	if sigAt <= 0 {
		return "", ErrMalformedToken
	}
	payload, sig := string(raw[:sigAt]), string(raw[sigAt+1:])

	expAt := strings.LastIndexByte(payload, ':')
	if expAt <= 0 {
		return "", ErrMalformedToken
	}

	if !hmac.Equal([]byte(s.sign(payload)), []byte(sig)) {
		return "", ErrInvalidSignature
	}

	expires, err := strconv.ParseInt(payload[expAt+1:], 10, 64)
	if err != nil {
		return "", ErrMalformedToken
	}

	if !s.now().Before(time.Unix(expires, 0)) {
		return "", ErrTokenExpired
	}

	return payload[:expAt], nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
