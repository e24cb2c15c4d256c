package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"
	"github.com/indocarisinternational/admin-caris/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleLimiterTTL drops limiters of keys that went quiet.
const idleLimiterTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type KeyedRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	r       rate.Limit
	b       int
	sweptAt time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		entries: make(map[string]*limiterEntry),
		r:       r,
		b:       b,
		sweptAt: time.Now(),
	}
}

func (k *KeyedRateLimiter) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := time.Now()
	if now.Sub(k.sweptAt) > idleLimiterTTL {
		for key, e := range k.entries {
			if now.Sub(e.lastSeen) > idleLimiterTTL {
				delete(k.entries, key)
			}
		}
		k.sweptAt = now
	}

	e, ok := k.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(k.r, k.b)}
		k.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.Allow()
}

var errTooManyRequests = apperror.New(
	apperror.CodeTooManyRequests,
	"Too many requests, please slow down",
	http.StatusTooManyRequests,
)

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			response.FromError(c, errTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByUser limits per authenticated user and skips anonymous requests.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.Allow(userID) {
			response.FromError(c, errTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
