package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nourish-generator/internal/pkg/common"
)

// Deduplicator 請求去重器，短時間內指紋相同的 POST 一律擋下。
// 生成一份食譜要打一次模型 API，重複送出很貴。
type Deduplicator struct {
	mu      sync.Mutex
	seen    map[string]time.Time
	window  time.Duration
	stopped chan struct{}
}

// NewDeduplicator 建立去重器並啟動過期指紋清理協程
func NewDeduplicator(window time.Duration) *Deduplicator {
	if window <= 0 {
		window = time.Second
	}
	d := &Deduplicator{
		seen:    make(map[string]time.Time),
		window:  window,
		stopped: make(chan struct{}),
	}
	go d.startCleanup()
	return d
}

// Stop 停止清理協程
func (d *Deduplicator) Stop() {
	close(d.stopped)
}

func (d *Deduplicator) startCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			d.mu.Lock()
			for k, t := range d.seen {
				if now.Sub(t) > 10*d.window {
					delete(d.seen, k)
				}
			}
			d.mu.Unlock()
		case <-d.stopped:
			return
		}
	}
}

// isDuplicate 檢查指紋並記錄本次請求
func (d *Deduplicator) isDuplicate(fingerprint string, now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if lastTime, exists := d.seen[fingerprint]; exists && now.Sub(lastTime) <= d.window {
		return true
	}
	d.seen[fingerprint] = now
	return false
}

// Middleware 回傳去重中間件，只針對 POST 請求
func (d *Deduplicator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" {
			c.Next()
			return
		}

		// 指紋為方法、路徑加請求體雜湊
		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}
			hash := sha256.Sum256(body)
			fingerprint += ":" + hex.EncodeToString(hash[:])

			// 讀完要放回去，後面的 handler 還要用
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		if d.isDuplicate(fingerprint, time.Now()) {
			c.JSON(429, gin.H{
				"error": "Request too frequent",
				"code":  "TOO_MANY_REQUESTS",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
