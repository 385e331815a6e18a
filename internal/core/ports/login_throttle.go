package ports

import "context"

// LoginThrottle tracks failed login attempts per (email, source IP) pair and
// blocks further attempts once a threshold is crossed within its window.
type LoginThrottle interface {
	// Allow reports whether another attempt for this pair may proceed.
	Allow(ctx context.Context, email, sourceIP string) (bool, error)

	// RecordFailure bumps the failure counter for this pair.
	RecordFailure(ctx context.Context, email, sourceIP string) error
}
