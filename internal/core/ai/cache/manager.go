package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"nourish-generator/internal/infrastructure/config"
	"nourish-generator/internal/pkg/common"
)

// Manager 快取管理器，負責鍵值生成、後端選擇與統計。
// 快取停用時 NewManager 回傳 nil，所有方法都能在 nil 接收者上安全呼叫。
type Manager struct {
	cfg   *config.CacheConfig
	store Store
	stats managerStats
}

type managerStats struct {
	hits   int64
	misses int64
	errors int64
}

// NewManager 依設定建立快取管理器
func NewManager(cfg *config.CacheConfig) (*Manager, error) {
	if !cfg.Enabled {
		common.LogInfo("Cache disabled")
		return nil, nil
	}

	var store Store
	switch cfg.Backend {
	case "redis":
		redisStore, err := NewRedisStore(cfg)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		store = NewMemoryStore(cfg)
	}

	common.LogInfo("快取管理員已初始化",
		zap.String("後端", cfg.Backend),
		zap.Int("最大容量", cfg.MaxSize),
		zap.Duration("存活時間", cfg.TTL),
		zap.Duration("清理間隔", cfg.CleanupInterval),
	)

	return &Manager{
		cfg:   cfg,
		store: store,
	}, nil
}

// Get 以提示詞取回快取的模型回應
func (m *Manager) Get(ctx context.Context, prompt string) (string, error) {
	if m == nil {
		return "", common.ErrCacheDisabled
	}

	key := m.generateKey(prompt)
	value, err := m.store.Get(ctx, key)
	if err != nil {
		atomic.AddInt64(&m.stats.misses, 1)
		if err != common.ErrCacheMiss {
			atomic.AddInt64(&m.stats.errors, 1)
		}
		common.LogCacheMiss("model_response", key)
		return "", err
	}

	atomic.AddInt64(&m.stats.hits, 1)
	common.LogCacheHit("model_response", key)
	return value, nil
}

// Set 快取模型回應
func (m *Manager) Set(ctx context.Context, prompt, value string) error {
	if m == nil {
		return nil
	}

	key := m.generateKey(prompt)
	if err := m.store.Set(ctx, key, value); err != nil {
		atomic.AddInt64(&m.stats.errors, 1)
		return err
	}

	common.LogInfo("快取已儲存",
		zap.String("鍵", key),
	)
	return nil
}

// Close 釋放後端資源
func (m *Manager) Close() error {
	if m == nil {
		return nil
	}
	return m.store.Close()
}

// GetStats 取得快取統計
func (m *Manager) GetStats() map[string]interface{} {
	if m == nil {
		return map[string]interface{}{"enabled": false}
	}

	stats := map[string]interface{}{
		"enabled": true,
		"backend": m.cfg.Backend,
		"hits":    atomic.LoadInt64(&m.stats.hits),
		"misses":  atomic.LoadInt64(&m.stats.misses),
		"errors":  atomic.LoadInt64(&m.stats.errors),
	}
	if mem, ok := m.store.(*MemoryStore); ok {
		stats["size"] = mem.Len()
	}
	return stats
}

// generateKey 以提示詞的 SHA-256 作為快取鍵，提示詞一字不差才會命中
func (m *Manager) generateKey(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("text:%s", hex.EncodeToString(hash[:]))
}
