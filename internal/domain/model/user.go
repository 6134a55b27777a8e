package model

import (
	"strings"
	"time"
)

// User represents a registered account of the career platform.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Registration carries sign-up fields as submitted by the client.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned by successful registration and login.
type AuthResult struct {
	ID    string
	Name  string
	Email string
	Token string
}

// NormalizeEmail returns the canonical form used for uniqueness and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
