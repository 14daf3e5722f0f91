package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/aman52kwah/kaynetartsphere/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type keyedLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
}

func newKeyedLimiter(rps float64, burst int) *keyedLimiter {
	kl := &keyedLimiter{
		entries: make(map[string]*limiterEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	go kl.cleanup()
	return kl
}

func (kl *keyedLimiter) allow(key string) bool {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	e, ok := kl.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(kl.rps, kl.burst)}
		kl.entries[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter.Allow()
}

// cleanup drops limiters idle for ten minutes so the map does not grow
// unbounded with one entry per client ever seen.
func (kl *keyedLimiter) cleanup() {
	for range time.Tick(time.Minute) {
		kl.mu.Lock()
		for key, e := range kl.entries {
			if time.Since(e.lastSeen) > 10*time.Minute {
				delete(kl.entries, key)
			}
		}
		kl.mu.Unlock()
	}
}

// RateLimitByUser limits requests per authenticated user. Requests without
// a validated user fall back to the client IP.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	kl := newKeyedLimiter(rps, burst)
	return func(c *gin.Context) {
		key := c.GetString("user_id_validated")
		if key == "" {
			key = c.ClientIP()
		}
		if !kl.allow(key) {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByIP limits requests per client IP, for unauthenticated surfaces
// like login and register.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	kl := newKeyedLimiter(rps, burst)
	return func(c *gin.Context) {
		if !kl.allow(c.ClientIP()) {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
