package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Limit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	blocked := 0
	limiter := NewRateLimiter(1, 2, func(*gin.Context) { blocked++ })

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.POST("/api/submit", limiter.Limit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(remoteAddr string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/submit", nil)
		req.RemoteAddr = remoteAddr
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1002"))
	assert.Equal(t, 1, blocked)

	// Buckets are per client IP.
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	r := NewRateLimiter(1, 1, nil).(*rateLimiter)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	assert.True(t, r.allow("10.0.0.1"))
	assert.False(t, r.allow("10.0.0.1"))
	assert.Len(t, r.clients, 1)

	now = now.Add(idleLimiterTTL + time.Minute)
	assert.True(t, r.allow("10.0.0.2"))
	assert.Len(t, r.clients, 1)
}
