package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw)
	router.POST("/echo", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func doPost(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBodySizeLimit(t *testing.T) {
	router := newTestRouter(BodySizeLimit(16))

	w := doPost(router, `{"a":1}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doPost(router, strings.Repeat("x", 64))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRateLimit(t *testing.T) {
	router := newTestRouter(RateLimit(2, time.Minute))

	assert.Equal(t, http.StatusOK, doPost(router, `{"n":1}`).Code)
	assert.Equal(t, http.StatusOK, doPost(router, `{"n":2}`).Code)

	w := doPost(router, `{"n":3}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestDeduplication(t *testing.T) {
	dedup := NewDeduplicator(time.Minute)
	defer dedup.Stop()
	router := newTestRouter(dedup.Middleware())

	require.Equal(t, http.StatusOK, doPost(router, `{"same":true}`).Code)

	// 視窗內完全相同的請求被擋下
	assert.Equal(t, http.StatusTooManyRequests, doPost(router, `{"same":true}`).Code)

	// 不同請求體不受影響
	assert.Equal(t, http.StatusOK, doPost(router, `{"same":false}`).Code)
}

func TestDeduplicationIgnoresGet(t *testing.T) {
	dedup := NewDeduplicator(time.Minute)
	defer dedup.Stop()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(dedup.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterRefill(t *testing.T) {
	rl := NewRateLimiter(1, 100*time.Millisecond)

	assert.True(t, rl.Allow())
	assert.False(t, rl.Allow())

	time.Sleep(150 * time.Millisecond)
	assert.True(t, rl.Allow())
}
