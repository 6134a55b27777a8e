package test

import (
	"math/rand/v2"
	"strings"

	"github.com/polkiloo/careerpath/internal/domain/model"
)

const (
	asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	emailDomains = "example.com example.org mail.test"
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
// When maxLen equals minLen the resulting string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen + rand.IntN(maxLen-minLen+1)

	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(asciiLetters[rand.IntN(len(asciiLetters))])
	}
	return b.String()
}

// RandomEmail returns a syntactically valid address with mixed-case local part.
func RandomEmail() string {
	domains := strings.Fields(emailDomains)
	return RandomASCIIString(5, 12) + "@" + domains[rand.IntN(len(domains))]
}

// RandomRegistration returns input that passes registration validation.
func RandomRegistration() model.Registration {
	return model.Registration{
		Name:     "User " + RandomASCIIString(3, 8),
		Email:    RandomEmail(),
		Password: RandomASCIIString(6, 32),
	}
}
