package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures   = 10
	defaultFailureWindow = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per (email, source IP) pair in
// Redis. Once the counter crosses the limit within its window, further
// attempts for that pair are blocked until the key expires.
// Key format: login_failures:<email>:<ip>
type LoginThrottle struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// Non-positive limit or window fall back to the defaults.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration) *LoginThrottle {
	if limit <= 0 {
		limit = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultFailureWindow
	}
	return &LoginThrottle{client: client, limit: int64(limit), window: window}
}

// Allow reports whether another attempt for this pair may proceed.
func (t *LoginThrottle) Allow(ctx context.Context, email, sourceIP string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email, sourceIP)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n < t.limit, nil
}

// RecordFailure bumps the failure counter; the window starts at the first
// failure and is not extended by later ones.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email, sourceIP string) error {
	key := t.key(email, sourceIP)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

func (t *LoginThrottle) key(email, sourceIP string) string {
	return fmt.Sprintf("login_failures:%s:%s", email, sourceIP)
}
