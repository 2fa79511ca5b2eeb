package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = "u" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// stubLimiter trips after a fixed number of recorded failures.
type stubLimiter struct {
	failures int
	limit    int
	resets   int
}

func (l *stubLimiter) TooMany(_ context.Context, _ string) (bool, error) {
	return l.limit > 0 && l.failures >= l.limit, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.failures = 0
	l.resets++
	return nil
}

// stubAudit captures enqueued activity entries.
type stubAudit struct {
	entries []ports.ActivityInput
}

func (a *stubAudit) Enqueue(entry ports.ActivityInput) {
	a.entries = append(a.entries, entry)
}

func newAuthService(repo ports.UserRepository, limiter LoginLimiter) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, limiter, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	user, err := svc.Register(context.Background(), ports.RegisterInput{Username: "alice", Password: "pass123"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleStaff {
		t.Fatalf("expected default role staff, got %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	var vErr *domain.ValidationError
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "", Password: "pass"}); !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pass", Role: "superuser"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pass"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pass2"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{limit: 3}
	svc := newAuthService(repo, limiter)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "carol", Password: "s3cret", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset on success, got %d resets", limiter.resets)
	}
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller.
func TestAuthService_Login_UniformFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "dave", Password: "goodpass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{limit: 2}
	svc := newAuthService(repo, limiter)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "erin", Password: "rightpass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, _, err := svc.Login(context.Background(), "erin", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// Even the correct password is rejected once the limiter trips.
	if _, _, err := svc.Login(context.Background(), "erin", "rightpass"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}
