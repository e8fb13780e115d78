// Package ratelimit provides per-client rate limiting for the public API
// using a token bucket per client and endpoint.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket allows a number of requests per window, with tokens
// refilling at a steady rate.
type TokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// newTokenBucket creates a bucket that starts full.
func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes one token if available.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// EndpointConfig holds the limit for one endpoint path prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns the built-in limits: the contact form is strict,
// resume parsing moderate, everything else generous.
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  300,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/contact", Method: "POST", Limit: 5, Window: time.Minute, Burst: 2},
			{Path: "/api/resume/parse", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
			{Path: "/health", Method: "GET", Limit: 0, Window: time.Minute}, // unlimited
		},
	}
}

// Limiter manages token buckets for client+endpoint combinations.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*TokenBucket
	config  *Config
}

// NewLimiter creates a rate limiter with the given configuration.
// A nil config uses DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	return &Limiter{
		buckets: make(map[string]*TokenBucket),
		config:  config,
	}
}

// Allow reports whether a request from the given client to the given
// endpoint should proceed.
func (l *Limiter) Allow(clientID, path, method string) bool {
	if !l.config.Enabled {
		return true
	}

	cfg := l.match(path, method)
	if cfg.Limit <= 0 && cfg.Path != "" {
		return true // explicitly unlimited endpoint
	}
	limit := cfg.Limit
	window := cfg.Window
	burst := cfg.Burst
	if limit == 0 {
		limit = l.config.DefaultLimit
		window = l.config.DefaultWindow
	}
	if burst == 0 {
		burst = limit
	}

	key := clientID + ":" + path + ":" + method
	l.mu.Lock()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = newTokenBucket(burst, float64(limit)/window.Seconds())
		l.buckets[key] = bucket
	}
	l.mu.Unlock()

	return bucket.allow()
}

// match finds the endpoint config for a path by prefix, or a zero value.
func (l *Limiter) match(path, method string) EndpointConfig {
	for _, cfg := range l.config.EndpointConfigs {
		if cfg.Method != "" && cfg.Method != method {
			continue
		}
		if cfg.Path == path || (len(cfg.Path) > 0 && cfg.Path[len(cfg.Path)-1] == '/' &&
			len(path) >= len(cfg.Path) && path[:len(cfg.Path)] == cfg.Path) {
			return cfg
		}
	}
	return EndpointConfig{}
}
