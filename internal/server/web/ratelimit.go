package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	msgTooManyAttempts = "Too many attempts. Please try again later."

	clientIdleTTL = 3 * time.Minute
)

// clientLimiter keeps one token bucket per client IP. Buckets idle for
// clientIdleTTL are dropped lazily, at most once per minute.
type clientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	lastPrune time.Time
	now       func() time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newClientLimiter allows perMinute attempts per minute per IP, all of which
// may be spent at once.
func newClientLimiter(perMinute int) *clientLimiter {
	return &clientLimiter{
		clients: make(map[string]*client),
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		now:     time.Now,
	}
}

func (l *clientLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPrune) >= time.Minute {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) >= clientIdleTTL {
				delete(l.clients, k)
			}
		}
		l.lastPrune = now
	}

	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// middleware re-renders view with a 429 once the caller runs out of attempts.
func (l *clientLimiter) middleware(view string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.HTML(http.StatusTooManyRequests, view, page{Message: msgTooManyAttempts})
			c.Abort()
			return
		}
		c.Next()
	}
}
