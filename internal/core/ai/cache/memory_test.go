package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nourish-generator/internal/infrastructure/config"
	"nourish-generator/internal/pkg/common"
)

func memoryConfig() *config.CacheConfig {
	return &config.CacheConfig{
		Enabled:         true,
		Backend:         "memory",
		MaxSize:         2,
		TTL:             time.Minute,
		CleanupInterval: time.Minute,
	}
}

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemoryStore(memoryConfig())
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", "v1"))
	got, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestMemoryStoreExpiry(t *testing.T) {
	cfg := memoryConfig()
	cfg.TTL = 10 * time.Millisecond
	store := NewMemoryStore(cfg)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", "v1"))
	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "k1")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreLRUEviction(t *testing.T) {
	store := NewMemoryStore(memoryConfig())
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", "v1"))
	require.NoError(t, store.Set(ctx, "k2", "v2"))

	// 碰一下 k1，讓 k2 成為最少使用的條目
	_, err := store.Get(ctx, "k1")
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "k3", "v3"))

	_, err = store.Get(ctx, "k2")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	got, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)
}
