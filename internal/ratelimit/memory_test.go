package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_EnforcesLimit(t *testing.T) {
	limiter := NewMemoryLimiter(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "login:10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	allowed, err := limiter.Allow(ctx, "login:10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Error("attempt over the limit should be denied")
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Hour)
	ctx := context.Background()

	if allowed, _ := limiter.Allow(ctx, "login:10.0.0.1"); !allowed {
		t.Fatal("first attempt should be allowed")
	}
	if allowed, _ := limiter.Allow(ctx, "login:10.0.0.1"); allowed {
		t.Fatal("second attempt should be denied")
	}

	if allowed, _ := limiter.Allow(ctx, "login:10.0.0.2"); !allowed {
		t.Error("other client should not be affected")
	}
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	limiter := NewMemoryLimiter(1, 10*time.Millisecond)
	ctx := context.Background()

	if allowed, _ := limiter.Allow(ctx, "login:10.0.0.1"); !allowed {
		t.Fatal("first attempt should be allowed")
	}
	if allowed, _ := limiter.Allow(ctx, "login:10.0.0.1"); allowed {
		t.Fatal("second attempt should be denied")
	}

	time.Sleep(20 * time.Millisecond)

	if allowed, _ := limiter.Allow(ctx, "login:10.0.0.1"); !allowed {
		t.Error("attempt after window reset should be allowed")
	}
}

func TestNoOpLimiter_AlwaysAllows(t *testing.T) {
	limiter := NewNoOpLimiter()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow(ctx, "login:10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatal("no-op limiter denied a request")
		}
	}
}
