package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"nourish-generator/internal/infrastructure/config"
	"nourish-generator/internal/pkg/common"
)

// MemoryStore 行程內快取，TTL 加 LRU 淘汰
type MemoryStore struct {
	cfg   *config.CacheConfig
	mu    sync.Mutex
	store map[string]memoryEntry
	done  chan struct{}
}

// memoryEntry 快取條目
type memoryEntry struct {
	value       string
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// NewMemoryStore 建立記憶體快取並啟動過期清理協程
func NewMemoryStore(cfg *config.CacheConfig) *MemoryStore {
	s := &MemoryStore{
		cfg:   cfg,
		store: make(map[string]memoryEntry),
		done:  make(chan struct{}),
	}
	go s.startCleanup()
	return s
}

// Get 取回快取值
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.store[key]
	if !exists {
		return "", common.ErrCacheMiss
	}

	// 過期視同未命中，順手刪除
	if time.Now().After(entry.expiresAt) {
		delete(s.store, key)
		return "", common.ErrCacheMiss
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	s.store[key] = entry
	return entry.value, nil
}

// Set 寫入快取值
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 容量滿時先清過期項目，再做 LRU 淘汰
	if len(s.store) >= s.cfg.MaxSize {
		evicted := s.cleanupLocked()
		common.LogInfo("快取清理執行",
			zap.Int("清理數量", evicted),
		)
		if len(s.store) >= s.cfg.MaxSize {
			s.evictLRULocked()
		}
		if len(s.store) >= s.cfg.MaxSize {
			common.LogWarn("快取已滿",
				zap.Int("目前容量", len(s.store)),
			)
			return common.ErrCacheFull
		}
	}

	now := time.Now()
	s.store[key] = memoryEntry{
		value:      value,
		expiresAt:  now.Add(s.cfg.TTL),
		createdAt:  now,
		lastAccess: now,
	}
	return nil
}

// Close 停止清理協程
func (s *MemoryStore) Close() error {
	close(s.done)
	return nil
}

// Len 目前條目數
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.store)
}

func (s *MemoryStore) startCleanup() {
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			s.cleanupLocked()
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

// cleanupLocked 清理過期條目，呼叫端需持有鎖
func (s *MemoryStore) cleanupLocked() int {
	now := time.Now()
	count := 0
	for key, entry := range s.store {
		if now.After(entry.expiresAt) {
			delete(s.store, key)
			count++
		}
	}
	return count
}

// evictLRULocked 淘汰最少使用的條目，呼叫端需持有鎖
func (s *MemoryStore) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range s.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(s.store, oldestKey)
		common.LogInfo("快取已淘汰(LRU)",
			zap.String("鍵", oldestKey),
		)
	}
}
