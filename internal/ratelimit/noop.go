package ratelimit

import (
	"context"
)

// NoOpLimiter is a no-operation limiter that always allows.
// Use this when rate limiting is disabled or in tests.
type NoOpLimiter struct{}

// NewNoOpLimiter creates a new no-op limiter.
func NewNoOpLimiter() *NoOpLimiter {
	return &NoOpLimiter{}
}

// Allow always returns true.
func (n *NoOpLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return true, ctx.Err()
}

// Ensure NoOpLimiter implements Limiter.
var _ Limiter = (*NoOpLimiter)(nil)
