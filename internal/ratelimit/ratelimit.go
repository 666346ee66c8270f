// Package ratelimit implements fixed-window request limiting with a local
// in-process backend and a Redis backend for multi-instance deployments.
package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrLimited is returned by Allow when the caller exhausted its window.
var ErrLimited = errors.New("rate limit exceeded")

// Limiter counts requests per key over a fixed window.
type Limiter interface {
	// Allow records one request for key and reports how many requests remain
	// in the current window. It returns ErrLimited once the window is spent.
	Allow(ctx context.Context, key string) (remaining int, err error)
	Limit() int
	Window() time.Duration
}

type windowState struct {
	count   int
	resetAt time.Time
}

// Memory is a mutex-guarded fixed-window limiter for single-instance runs
// and tests.
type Memory struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	seen   map[string]*windowState

	// now is swappable in tests.
	now func() time.Time
}

// NewMemory builds an in-process limiter allowing limit requests per window.
func NewMemory(limit int, window time.Duration) *Memory {
	return &Memory{
		limit:  limit,
		window: window,
		seen:   make(map[string]*windowState),
		now:    time.Now,
	}
}

func (m *Memory) Limit() int            { return m.limit }
func (m *Memory) Window() time.Duration { return m.window }

func (m *Memory) Allow(_ context.Context, key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	st, ok := m.seen[key]
	if !ok || now.After(st.resetAt) {
		st = &windowState{resetAt: now.Add(m.window)}
		m.seen[key] = st
	}
	st.count++
	if st.count > m.limit {
		return 0, ErrLimited
	}
	return m.limit - st.count, nil
}

// incrScript bumps the counter and arms the window expiry atomically so two
// racing requests cannot leave an immortal key behind.
var incrScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then redis.call('PEXPIRE', KEYS[1], ARGV[1]) end
return current`)

// Redis is a fixed-window limiter shared across instances. Redis outages
// fail open: counting requests is not worth dropping them.
type Redis struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

// NewRedis builds a Redis-backed limiter. The prefix namespaces keys so
// independent endpoints do not share windows.
func NewRedis(rdb *redis.Client, prefix string, limit int, window time.Duration) *Redis {
	return &Redis{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

func (r *Redis) Limit() int            { return r.limit }
func (r *Redis) Window() time.Duration { return r.window }

func (r *Redis) Allow(ctx context.Context, key string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()
	res, err := incrScript.Run(ctx, r.rdb, []string{"rl:" + r.prefix + ":" + key}, r.window.Milliseconds()).Result()
	if err != nil {
		return r.limit, nil
	}
	n, _ := res.(int64)
	if n > int64(r.limit) {
		return 0, ErrLimited
	}
	return r.limit - int(n), nil
}
