package cache

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"nourish-generator/internal/infrastructure/config"
	"nourish-generator/internal/pkg/common"
)

// RedisStore 跨行程共用的 Redis 快取後端
type RedisStore struct {
	client *redis.Client
	cfg    *config.CacheConfig
}

// NewRedisStore 建立 Redis 快取並驗證連線
func NewRedisStore(cfg *config.CacheConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// 啟動即驗證，連不上 Redis 就不要帶著壞後端上線
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		cfg:    cfg,
	}, nil
}

// Get 取回快取值
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	return value, nil
}

// Set 寫入快取值並套用 TTL
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.cfg.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close 關閉 Redis 連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
