package ports

import (
	"context"

	"github.com/barangaylink/records-system/internal/core/domain"
)

// UpdateUserInput is a partial update: nil fields are left untouched.
// A supplied password is re-hashed; a supplied role must be whitelisted.
type UpdateUserInput struct {
	Username *string
	FullName *string
	Role     *domain.Role
	Password *string
}

// UserService is the admin-only account administration surface. Every
// returned user carries no password hash by construction.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input RegisterInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput, actor string) (*domain.User, error)
	// Delete removes the account unless doing so would leave the system
	// without any admin.
	Delete(ctx context.Context, id string, actor string) error
}
