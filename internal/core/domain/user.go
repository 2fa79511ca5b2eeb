package domain

import (
	"errors"
	"time"
)

// Role is the closed set of access levels known to the system.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reports whether r is one of the whitelisted roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")
var ErrInvalidRole = errors.New("invalid role")
var ErrLastAdmin = errors.New("cannot remove the last admin user")
var ErrTooManyAttempts = errors.New("too many failed login attempts")
var ErrInvalidToken = errors.New("invalid or expired token")

// User models an authenticated actor. The password hash is never
// serialized outward.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FullName     string    `json:"full_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
