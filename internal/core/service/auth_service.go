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

// LoginLimiter abstracts the failed-attempt throttle (Redis).
type LoginLimiter interface {
	TooMany(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements registration and login.
type AuthService struct {
	repo    ports.UserRepository
	tokens  ports.TokenService
	limiter LoginLimiter // optional
	logger  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, limiter LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, limiter: limiter, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.Validation("username and password required")
	}
	role := input.Role
	if role == "" {
		role = domain.RoleStaff
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         role,
		FullName:     input.FullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login authenticates the pair and returns a signed token on success.
// Unknown usernames and wrong passwords both map to ErrInvalidCredentials
// so responses cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		locked, err := s.limiter.TooMany(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("login limiter check failed, allowing attempt")
		} else if locked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("failed to reset login limiter")
		}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("login succeeded")
	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}
