package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter implements Limiter using in-memory fixed windows.
// This is suitable for single-node deployments. Counters are NOT shared
// across process restarts or multiple instances.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*windowEntry
	limit   int
	window  time.Duration
}

// windowEntry tracks the counter for a single key's current window.
type windowEntry struct {
	count    int
	resetsAt time.Time
}

// NewMemoryLimiter creates a new in-memory limiter allowing limit events
// per window for each key.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	ml := &MemoryLimiter{
		windows: make(map[string]*windowEntry),
		limit:   limit,
		window:  window,
	}

	// Start a background goroutine to clean up expired windows.
	go ml.cleanupLoop()

	return ml
}

// cleanupLoop periodically removes expired windows.
func (m *MemoryLimiter) cleanupLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.cleanup()
	}
}

// cleanup removes expired windows.
func (m *MemoryLimiter) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, entry := range m.windows {
		if now.After(entry.resetsAt) {
			delete(m.windows, key)
		}
	}
}

// Allow counts one event for the key and reports whether it stayed within
// the limit for the current window.
func (m *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	entry, exists := m.windows[key]
	if !exists || now.After(entry.resetsAt) {
		m.windows[key] = &windowEntry{count: 1, resetsAt: now.Add(m.window)}
		return true, nil
	}

	entry.count++
	return entry.count <= m.limit, nil
}

// Ensure MemoryLimiter implements Limiter.
var _ Limiter = (*MemoryLimiter)(nil)
