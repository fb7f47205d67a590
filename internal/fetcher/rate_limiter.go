package fetcher

import (
	"context"
	"sync"
	"time"
)

// RateLimiter bounds concurrency and request rate per host. A single run
// only issues a couple of requests (robots.txt plus the listing), but the
// limiter keeps repeated runs from hammering the source.
type RateLimiter struct {
	maxConcurrent int
	rpm           int
	hosts         map[string]*hostLimiter
	mu            sync.Mutex
}

type hostLimiter struct {
	sem         chan struct{}
	windowStart time.Time
	requests    int
	mu          sync.Mutex
}

func NewRateLimiter(maxConcurrent, rpm int) *RateLimiter {
	return &RateLimiter{
		maxConcurrent: maxConcurrent,
		rpm:           rpm,
		hosts:         make(map[string]*hostLimiter),
	}
}

func (rl *RateLimiter) Wait(ctx context.Context, host string) error {
	rl.mu.Lock()
	limiter, exists := rl.hosts[host]
	if !exists {
		limiter = &hostLimiter{
			sem: make(chan struct{}, rl.maxConcurrent),
		}
		rl.hosts[host] = limiter
	}
	rl.mu.Unlock()

	select {
	case limiter.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-limiter.sem }()

	limiter.mu.Lock()
	now := time.Now()

	if now.Sub(limiter.windowStart) > time.Minute {
		limiter.requests = 0
		limiter.windowStart = now
	}

	if limiter.requests >= rl.rpm {
		waitTime := time.Minute - now.Sub(limiter.windowStart)
		limiter.mu.Unlock()

		select {
		case <-time.After(waitTime):
			limiter.mu.Lock()
			limiter.requests = 1
			limiter.windowStart = time.Now()
			limiter.mu.Unlock()
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	limiter.requests++
	limiter.mu.Unlock()

	return nil
}
