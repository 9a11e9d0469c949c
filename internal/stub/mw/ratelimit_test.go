package mw

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(r rate.Limit, b int) *gin.Engine {
	router := gin.New()
	router.Use(RateLimiter(r, b))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestRateLimiter_ThrottlesAfterBurst(t *testing.T) {
	router := newLimitedRouter(1, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_ResponseNamesTheLimit(t *testing.T) {
	router := newLimitedRouter(5, 1)

	var last *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(last, req)
	}

	require.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Contains(t, last.Body.String(), "limit is 5 per second")
}

func TestVisitorTable_PrunesIdleEntriesWhenFull(t *testing.T) {
	table := newVisitorTable(10, 10)

	for i := 0; i < maxVisitors; i++ {
		table.get(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	require.Len(t, table.visitors, maxVisitors)

	// Age every entry past the TTL; the next new visitor triggers a prune.
	stale := time.Now().Add(-2 * visitorIdleTTL)
	table.mu.Lock()
	for _, v := range table.visitors {
		v.lastSeen = stale
	}
	table.mu.Unlock()

	table.get("192.168.1.1")
	assert.Len(t, table.visitors, 1)
}

func TestVisitorTable_ReusesLimiterPerIP(t *testing.T) {
	table := newVisitorTable(1, 1)
	first := table.get("10.0.0.1")
	second := table.get("10.0.0.1")
	assert.Same(t, first, second)
	assert.Len(t, table.visitors, 1)
}
