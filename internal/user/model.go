// Package user provides the user and scout domain model and data access.
package user

import (
	"errors"
	"time"
)

// ErrNotFound is returned by lookups for user ids that don't exist.
var ErrNotFound = errors.New("user not found")

// Role distinguishes booking customers from the scouts who represent
// locations.
type Role string

const (
	RoleUser  Role = "user"
	RoleScout Role = "scout"
)

// ValidRole returns true if s is a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleScout:
		return true
	}
	return false
}

// User represents an account: either a booking customer or a scout.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Region    string    `json:"region,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
