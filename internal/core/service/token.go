package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

// tokenClaims is the JWT payload. Registered claims carry issued-at and
// expiry; the rest identifies the user.
type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's id, username and role, valid for
// the configured lifetime from now.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry. Every failure collapses into
// domain.ErrInvalidToken so callers cannot distinguish the cause.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     domain.Role(claims.Role),
	}, nil
}
