// Package domain contains the core business entities for the printer portal.
// These are pure Go structs with no external dependencies, representing
// the fundamental concepts of the printer monitoring system.
package domain

import (
	"time"
)

// User represents a registered account in the system.
// Every other entity is partitioned by the user's email address.
type User struct {
	// ID is the unique identifier for the user (assigned by the store).
	ID string `json:"id"`

	// Email is the unique email address used for login. It also serves as
	// the ownership key (owner_email) on every resource the user creates.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This must never be exposed in API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user registered.
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a new User with the registration timestamp set.
func NewUser(email, passwordHash string) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
