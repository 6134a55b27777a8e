package model

import "time"

// EventUserRegistered is the type of the event emitted after a successful registration.
const EventUserRegistered = "user.registered"

// UserRegistered describes a newly created account.
type UserRegistered struct {
	Type       string    `json:"type"`
	UserID     string    `json:"userId"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewUserRegistered builds the event for u.
func NewUserRegistered(u *User, at time.Time) UserRegistered {
	return UserRegistered{
		Type:       EventUserRegistered,
		UserID:     u.ID,
		Email:      u.Email,
		Name:       u.Name,
		OccurredAt: at.UTC(),
	}
}
