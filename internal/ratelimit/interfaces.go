// Package ratelimit provides request rate limiting abstractions.
// For single-node deployments, memory-based limiters are used.
// For distributed deployments, Redis-based limiters can be used.
package ratelimit

import (
	"context"
)

// Limiter defines the interface for request rate limiting.
// This abstraction allows switching between in-memory counters (single-node)
// and Redis-based counters (distributed) without changing handler logic.
type Limiter interface {
	// Allow reports whether another event is permitted for the key.
	// The key identifies the limited subject, e.g. "login:" + client IP.
	Allow(ctx context.Context, key string) (bool, error)
}
