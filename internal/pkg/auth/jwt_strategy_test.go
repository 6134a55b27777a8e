package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func flipSignatureChar(token string) string {
	dot := strings.LastIndexByte(token, '.')
	idx := dot + 3
	b := []byte(token)
	if b[idx] == 'A' {
		b[idx] = 'B'
	} else {
		b[idx] = 'A'
	}
	return string(b)
}

const base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// lastCharVariants returns token with its final character replaced by every other base64url character.
func lastCharVariants(token string) []string {
	last := token[len(token)-1]
	variants := make([]string, 0, len(base64URLAlphabet)-1)
	for i := 0; i < len(base64URLAlphabet); i++ {
		if base64URLAlphabet[i] == last {
			continue
		}
		variants = append(variants, token[:len(token)-1]+string(base64URLAlphabet[i]))
	}
	return variants
}

func TestJWTStrategy_RejectsAnyLastSignatureChar(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	for _, subject := range []string{"a", "ab", "abc", "8f14e45f-ceea-467f-a0e6-5e6b2b0c1f11"} {
		token, err := strategy.IssueToken(subject)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		variants := lastCharVariants(token)
		if len(variants) != 63 {
			t.Fatalf("expected 63 variants, got %d", len(variants))
		}
		for _, tampered := range variants {
			if _, err := strategy.ParseToken(tampered); !errors.Is(err, ErrInvalidSignature) {
				t.Fatalf("subject %q: expected ErrInvalidSignature for %q, got %v", subject, tampered, err)
			}
		}
	}
}

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	token, err := strategy.IssueToken("5f0c8a44-user")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected compact JWT, got %q", token)
	}

	subject, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if subject != "5f0c8a44-user" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestJWTStrategy_DefaultTTLIsThirtyDays(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	strategy := NewJWTStrategy("secret", Options{Now: fixedClock(now)})

	token, err := strategy.IssueToken("user")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	strategy.now = fixedClock(now.Add(30*24*time.Hour - time.Second))
	if _, err := strategy.ParseToken(token); err != nil {
		t.Fatalf("expected token valid just before expiry, got %v", err)
	}

	strategy.now = fixedClock(now.Add(30*24*time.Hour + time.Second))
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTStrategy_ParseTamperedSignature(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	token, err := strategy.IssueToken("user")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = strategy.ParseToken(flipSignatureChar(token))
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected error to wrap ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_ParseWrongSecret(t *testing.T) {
	token, err := NewJWTStrategy("secret", Options{}).IssueToken("user")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := NewJWTStrategy("other", Options{}).ParseToken(token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestJWTStrategy_ParseMalformed(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := strategy.ParseToken(token); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("token %q: expected ErrMalformedToken, got %v", token, err)
		}
	}
}

func TestJWTStrategy_RejectsOtherAlgorithms(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	claims := jwt.RegisteredClaims{
		Subject:   "user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_RequiresExpiryAndSubject(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user"}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := strategy.ParseToken(noExp); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken for missing exp, got %v", err)
	}

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := strategy.ParseToken(noSub); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken for missing sub, got %v", err)
	}
}

func TestJWTStrategy_IssueEmptySubject(t *testing.T) {
	if _, err := NewJWTStrategy("secret", Options{}).IssueToken(""); err == nil {
		t.Fatal("expected error for empty subject")
	}
}

func TestJWTStrategy_Name(t *testing.T) {
	if name := NewJWTStrategy("secret", Options{}).Name(); name != "jwt" {
		t.Fatalf("unexpected name: %s", name)
	}
}
