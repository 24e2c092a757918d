package infrastructure

import (
	"sync"
	"time"
)

// SendRateLimiter implements token bucket rate limiting per recipient, used to
// keep outbound notification bursts within channel limits.
type SendRateLimiter struct {
	mu          sync.RWMutex
	buckets     map[string]*tokenBucket
	rate        float64 // tokens per second
	maxTokens   float64 // burst capacity
	cleanupTick time.Duration
}

type tokenBucket struct {
	tokens     float64
	lastUpdate time.Time
}

// NewSendRateLimiter creates a rate limiter with specified rate and burst.
// rate: sends per second allowed per recipient
// burst: maximum burst capacity
func NewSendRateLimiter(rate float64, burst int) *SendRateLimiter {
	rl := &SendRateLimiter{
		buckets:     make(map[string]*tokenBucket),
		rate:        rate,
		maxTokens:   float64(burst),
		cleanupTick: 5 * time.Minute,
	}

	go rl.cleanup()

	return rl
}

// Allow checks if a send to the recipient may go out (consumes 1 token if allowed).
func (rl *SendRateLimiter) Allow(recipient string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	bucket, exists := rl.buckets[recipient]
	now := time.Now()

	if !exists {
		rl.buckets[recipient] = &tokenBucket{
			tokens:     rl.maxTokens - 1,
			lastUpdate: now,
		}
		return true
	}

	// Refill tokens based on time elapsed
	elapsed := now.Sub(bucket.lastUpdate).Seconds()
	bucket.tokens += elapsed * rl.rate
	if bucket.tokens > rl.maxTokens {
		bucket.tokens = rl.maxTokens
	}
	bucket.lastUpdate = now

	if bucket.tokens >= 1 {
		bucket.tokens -= 1
		return true
	}

	return false
}

// Reset removes rate limit state for a recipient.
func (rl *SendRateLimiter) Reset(recipient string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.buckets, recipient)
}

// cleanup removes stale buckets periodically.
func (rl *SendRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupTick)
	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for recipient, bucket := range rl.buckets {
			if now.Sub(bucket.lastUpdate) > 10*time.Minute {
				delete(rl.buckets, recipient)
			}
		}
		rl.mu.Unlock()
	}
}
