package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/captionsmith/backend/internal/cache"
)

func newTestCache(t *testing.T, ttl time.Duration) *cache.RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	return cache.NewRedisCache(mr.Addr(), "", 0, ttl)
}

func TestGetMissingKey(t *testing.T) {
	c := newTestCache(t, time.Minute)

	val, found, err := c.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.False(t, found)
	require.Empty(t, val)
}

func TestSetThenGet(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", `{"content_type":"x"}`))

	val, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, `{"content_type":"x"}`, val)
}
