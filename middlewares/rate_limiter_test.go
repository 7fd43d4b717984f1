package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func pingFrom(r *gin.Engine, ip string) int {
	req := httptest.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestStrictRateLimiterPerIP(t *testing.T) {
	r := limitedRouter(NewStrictRateLimiter())

	// One client burns through its burst.
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, pingFrom(r, "10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, pingFrom(r, "10.0.0.1"))

	// A different client is unaffected.
	assert.Equal(t, http.StatusOK, pingFrom(r, "10.0.0.2"))
}

func TestRateLimitSlidingWindowPerIP(t *testing.T) {
	rl := NewRateLimiter(3, 60)
	r := limitedRouter(rl.RateLimit())

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, pingFrom(r, "10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, pingFrom(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, pingFrom(r, "10.0.0.2"))
}
