package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

type rateLimiter struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
	ttl     time.Duration
	limit   int
}

// RateLimitMiddleware caps each client IP at limit requests per ttl
// using a fixed window. State is in-process only; a multi-instance
// deployment limits per instance.
func RateLimitMiddleware(ttl time.Duration, limit int) gin.HandlerFunc {
	rl := &rateLimiter{
		windows: make(map[string]*rateWindow),
		ttl:     ttl,
		limit:   limit,
	}

	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":         http.StatusTooManyRequests,
				"code_type":    "tooManyRequests",
				"code_message": "Too many requests",
				"data":         map[string]interface{}{},
			})
			return
		}
		c.Next()
	}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[ip]
	if !ok || now.After(w.resetAt) {
		rl.windows[ip] = &rateWindow{count: 1, resetAt: now.Add(rl.ttl)}
		rl.sweep(now)
		return true
	}

	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// sweep drops expired windows so the map doesn't grow with every IP
// ever seen. Called under rl.mu.
func (rl *rateLimiter) sweep(now time.Time) {
	if len(rl.windows) < 10000 {
		return
	}
	for ip, w := range rl.windows {
		if now.After(w.resetAt) {
			delete(rl.windows, ip)
		}
	}
}
