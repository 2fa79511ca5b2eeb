package ports

import (
	"context"

	"github.com/barangaylink/records-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	// Update overwrites the mutable fields (username, full name, role,
	// password hash) of the stored record identified by user.ID.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
