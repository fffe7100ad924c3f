package cache

import "context"

// Store 快取後端介面，記憶體與 Redis 兩種實作
type Store interface {
	// Get 取回快取值，未命中時回傳 common.ErrCacheMiss
	Get(ctx context.Context, key string) (string, error)
	// Set 寫入快取值，存活時間由實作自行套用
	Set(ctx context.Context, key, value string) error
	// Close 釋放後端資源
	Close() error
}
