// Package mw holds the stub API's gin middleware.
package mw

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxVisitors bounds the per-IP limiter table. When it fills up, entries
// idle longer than visitorIdleTTL are pruned; a dev stub left running for a
// long demo session should not accumulate state per client it ever saw.
const (
	maxVisitors    = 1024
	visitorIdleTTL = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitorTable struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	r        rate.Limit
	b        int
}

func newVisitorTable(r rate.Limit, b int) *visitorTable {
	return &visitorTable{
		visitors: make(map[string]*visitor),
		r:        r,
		b:        b,
	}
}

// get returns the limiter for ip, creating it on first sight and marking
// the visitor as seen.
func (t *visitorTable) get(ip string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.visitors[ip]
	if !ok {
		if len(t.visitors) >= maxVisitors {
			t.prune()
		}
		v = &visitor{limiter: rate.NewLimiter(t.r, t.b)}
		t.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// prune drops visitors idle past the TTL. Caller holds the lock.
func (t *visitorTable) prune() {
	cutoff := time.Now().Add(-visitorIdleTTL)
	for ip, v := range t.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(t.visitors, ip)
		}
	}
}

// RateLimiter enforces a per-IP token bucket across the stub API. The 429
// body carries the configured limit so a throttled client sees what it ran
// into rather than a bare refusal.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	table := newVisitorTable(r, b)
	return func(c *gin.Context) {
		if !table.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": fmt.Sprintf("Too many requests, limit is %g per second", float64(r)),
			})
			return
		}
		c.Next()
	}
}
