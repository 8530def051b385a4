package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/config"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)

	redisCache, err := cache.NewRedisCache(context.Background(), config.RedisConfig{
		Addr:        server.Addr(),
		DialTimeout: time.Second,
		DefaultTTL:  time.Hour,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = redisCache.Close()
	})

	return redisCache, server
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	redisCache, _ := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Set(ctx, "member:username:hong", "1", 0))

	value, ok, err := redisCache.Get(ctx, "member:username:hong")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	require.NoError(t, redisCache.Delete(ctx, "member:username:hong"))

	_, ok, err = redisCache.Get(ctx, "member:username:hong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_DefaultTTL(t *testing.T) {
	redisCache, server := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Set(ctx, "key", "value", 0))
	assert.Equal(t, time.Hour, server.TTL("key"))

	require.NoError(t, redisCache.Set(ctx, "short", "value", time.Minute))
	server.FastForward(2 * time.Minute)

	_, ok, err := redisCache.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_DeleteWithoutKeys(t *testing.T) {
	redisCache, _ := setupRedisCache(t)

	assert.NoError(t, redisCache.Delete(context.Background()))
}

func TestRedisCache_PingAfterServerClose(t *testing.T) {
	redisCache, server := setupRedisCache(t)

	require.NoError(t, redisCache.Ping(context.Background()))

	server.Close()
	assert.Error(t, redisCache.Ping(context.Background()))
}

func TestNewRedisCache_ConnectionFailure(t *testing.T) {
	_, err := cache.NewRedisCache(context.Background(), config.RedisConfig{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})

	assert.Error(t, err)
}
