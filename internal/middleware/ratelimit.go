package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"event-planner/pkg/response"
)

const (
	maxTrackedClients = 1000
	clientTTL         = 5 * time.Minute
)

// RateLimit rejects clients exceeding the per-IP request rate with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := extractIP(c.Request)
		if !m.limiter.Allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s %s", ip, c.FullPath())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client; idle clients expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(requestsPerMin/10, 1),
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
