package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxFailures   = 10
	failureWindow = 15 * time.Minute
)

// LoginLimiter throttles repeated failed login attempts per username,
// backed by Redis counters with a sliding expiry.
// Key format: login_fail:<username>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// TooMany reports whether the username has exhausted its allowed failures.
func (l *LoginLimiter) TooMany(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int64()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n >= maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, failureWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login limiter record: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.key(username)).Err()
}

func (l *LoginLimiter) key(username string) string {
	return "login_fail:" + username
}
