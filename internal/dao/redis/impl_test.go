package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"api_contatos/internal/config"
	"api_contatos/pkg/errorx"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache, err := Init(context.Background(), &config.RedisConfig{Host: mr.Host(), Port: portOf(t, mr)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func portOf(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}

func TestSetGetDelete(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "contato:1", `{"id":1}`, time.Minute))
	got, err := cache.Get(ctx, "contato:1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, got)
	assert.Equal(t, time.Minute, mr.TTL("contato:1"))

	require.NoError(t, cache.Delete(ctx, "contato:1"))
	got, err = cache.Get(ctx, "contato:1")
	require.NoError(t, err)
	assert.Empty(t, got)

	// 删除不存在的键
	assert.NoError(t, cache.Delete(ctx, "contato:1"))
}

func TestGetAfterServerDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	_, err := cache.Get(context.Background(), "contato:1")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeCacheError, errorx.GetCode(err))
}

func TestInitUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	port := portOf(t, mr)
	mr.Close()

	_, err := Init(context.Background(), &config.RedisConfig{Host: "127.0.0.1", Port: port})
	assert.Error(t, err)
}

func TestNoopCache(t *testing.T) {
	cache := NewNoopCache()
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "k", "v", time.Second))
	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, got)
}
