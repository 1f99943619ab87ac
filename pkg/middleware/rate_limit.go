package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long a client's bucket survives without requests.
const idleLimiterTTL = 10 * time.Minute

type RateLimiter interface {
	// Limit rejects requests over the per-client-IP token bucket with 429.
	Limit() gin.HandlerFunc
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	rps       rate.Limit
	burst     int
	onBlocked func(c *gin.Context)
	now       func() time.Time
	lastSweep time.Time
}

func (r *rateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) > idleLimiterTTL {
		for k, cl := range r.clients {
			if now.Sub(cl.lastSeen) > idleLimiterTTL {
				delete(r.clients, k)
			}
		}
		r.lastSweep = now
	}

	cl, ok := r.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

func (r *rateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.allow(c.ClientIP()) {
			if r.onBlocked != nil {
				r.onBlocked(c)
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}

// NewRateLimiter builds a limiter allowing rps requests per second per client
// IP with the given burst. onBlocked may be nil.
func NewRateLimiter(rps float64, burst int, onBlocked func(c *gin.Context)) RateLimiter {
	return &rateLimiter{
		clients:   map[string]*clientLimiter{},
		rps:       rate.Limit(rps),
		burst:     burst,
		onBlocked: onBlocked,
		now:       time.Now,
	}
}
