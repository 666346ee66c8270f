package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryAllowWithinLimit(t *testing.T) {
	m := NewMemory(3, time.Minute)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		remaining, err := m.Allow(ctx, "203.0.113.9")
		if err != nil {
			t.Fatalf("request %d: unexpected %v", i+1, err)
		}
		if want := 2 - i; remaining != want {
			t.Fatalf("request %d: remaining want %d, got %d", i+1, want, remaining)
		}
	}
	if _, err := m.Allow(ctx, "203.0.113.9"); !errors.Is(err, ErrLimited) {
		t.Fatalf("fourth request must be limited, got %v", err)
	}
}

func TestMemoryKeysAreIndependent(t *testing.T) {
	m := NewMemory(1, time.Minute)
	ctx := context.Background()
	if _, err := m.Allow(ctx, "a"); err != nil {
		t.Fatalf("first key: %v", err)
	}
	if _, err := m.Allow(ctx, "b"); err != nil {
		t.Fatalf("second key must have its own window: %v", err)
	}
	if _, err := m.Allow(ctx, "a"); !errors.Is(err, ErrLimited) {
		t.Fatal("first key must be exhausted")
	}
}

func TestMemoryWindowResets(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory(1, time.Minute)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	if _, err := m.Allow(ctx, "k"); err != nil {
		t.Fatalf("first request: %v", err)
	}
	if _, err := m.Allow(ctx, "k"); !errors.Is(err, ErrLimited) {
		t.Fatal("window not exhausted")
	}

	// Advance past the window: the counter starts over.
	now = now.Add(61 * time.Second)
	if _, err := m.Allow(ctx, "k"); err != nil {
		t.Fatalf("request after window reset: %v", err)
	}
}

func TestMemoryAccessors(t *testing.T) {
	m := NewMemory(10, 30*time.Second)
	if m.Limit() != 10 || m.Window() != 30*time.Second {
		t.Fatalf("accessors: got %d / %v", m.Limit(), m.Window())
	}
}
