package ports

import (
	"context"

	"github.com/barangaylink/records-system/internal/core/domain"
)

// TokenClaims is the identity carried by a verified bearer token.
type TokenClaims struct {
	UserID   string
	Username string
	Role     domain.Role
}

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns the embedded claims, or domain.ErrInvalidToken for
	// every failure class (bad signature, malformed token, expiry) without
	// distinguishing the cause.
	Verify(token string) (*TokenClaims, error)
}

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	Role     domain.Role // empty = staff
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
