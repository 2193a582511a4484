package middleware

import (
	"math"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig tunes the per-client token bucket.

type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
}

func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        envBool("RATE_LIMIT_ENABLED", true),
		Capacity:       envInt("RATE_LIMIT_CAPACITY", 60),
		RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
		cfg.TTL = minTTL
	}
	return cfg
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastSeen   time.Time
}

// NewTokenBucket returns a per-client-IP token bucket middleware backed by an
// in-memory map. A janitor goroutine drops buckets idle past the TTL.
func NewTokenBucket(cfg RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	go func() {
		ticker := time.NewTicker(cfg.TTL)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-cfg.TTL)
			mu.Lock()
			for key, b := range buckets {
				if b.lastSeen.Before(cutoff) {
					delete(buckets, key)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		key := c.ClientIP()
		now := time.Now()

		mu.Lock()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{tokens: cfg.Capacity, lastRefill: now}
			buckets[key] = b
		}

		if elapsed := now.Sub(b.lastRefill); elapsed >= cfg.RefillInterval {
			intervals := int(elapsed / cfg.RefillInterval)
			b.tokens += intervals * cfg.RefillTokens
			if b.tokens > cfg.Capacity {
				b.tokens = cfg.Capacity
			}
			b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * cfg.RefillInterval)
		}
		b.lastSeen = now

		allowed := b.tokens > 0
		if allowed {
			b.tokens--
		}
		remaining := b.tokens
		untilNext := cfg.RefillInterval - now.Sub(b.lastRefill)
		mu.Unlock()

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			secs := int(math.Ceil(untilNext.Seconds()))
			if secs < 0 {
				secs = 0
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":        "TOO_MANY_REQUESTS",
				"message":     "Rate limit exceeded",
				"retry_after": secs,
			})
			return
		}

		c.Next()
	}
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
