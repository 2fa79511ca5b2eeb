package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

// UserService implements admin account administration, including the
// last-admin invariant on deletes and demotions.
type UserService struct {
	repo   ports.UserRepository
	audit  ports.AuditDispatcher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditDispatcher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.Validation("username and password required")
	}
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		FullName:     input.FullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.record("create", created.ID, created.Username)
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput, actor string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Role != nil && *input.Role != user.Role {
		if !input.Role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		// Demoting the only admin would lock everyone out.
		if user.Role == domain.RoleAdmin {
			admins, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
			if err != nil {
				return nil, err
			}
			if admins <= 1 {
				return nil, domain.ErrLastAdmin
			}
		}
		user.Role = *input.Role
	}
	if input.Username != nil && *input.Username != "" {
		user.Username = *input.Username
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.record("update", user.ID, actor)
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string, actor string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == domain.RoleAdmin {
		admins, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Str("deleted_by", actor).Msg("user deleted")
	s.record("delete", id, actor)
	return nil
}

// Bootstrap creates a default admin account when the user collection is
// empty, so a fresh deployment is reachable.
func (s *UserService) Bootstrap(ctx context.Context, username, password string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		FullName:     "Administrator",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// A concurrent replica may have seeded first.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	s.logger.Info().Str("username", username).Msg("seeded default admin account")
	return nil
}

func (s *UserService) record(action, entityID, actor string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.ActivityInput{
		Action:      action,
		Entity:      "user",
		EntityID:    entityID,
		PerformedBy: actor,
	})
}
