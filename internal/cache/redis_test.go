package cache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NissanXoX/LinkApp/internal/cache"
	"github.com/NissanXoX/LinkApp/internal/config"
)

func setupCache(t *testing.T) *cache.RedisCache {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	return cache.NewRedisCache(cfg)
}

// TestLikeCountMissVsZero makes sure a cached zero reads as a hit, not as a
// miss that would send the caller back to the DB.
func TestLikeCountMissVsZero(t *testing.T) {
	ctx := context.Background()
	c := setupCache(t)

	_, found, err := c.GetLikeCount(ctx, 7)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.UpdateLikeCount(ctx, 7, 0))

	n, found, err := c.GetLikeCount(ctx, 7)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(0), n)
}

// TestIncrLikeCountOnlyWhenWarm bumps a warm counter and leaves a cold key
// untouched.
func TestIncrLikeCountOnlyWhenWarm(t *testing.T) {
	ctx := context.Background()
	c := setupCache(t)

	// cold key: no-op
	require.NoError(t, c.IncrLikeCount(ctx, 7))
	_, found, err := c.GetLikeCount(ctx, 7)
	require.NoError(t, err)
	assert.False(t, found, "a cold key must stay cold")

	// warm key: bump
	require.NoError(t, c.UpdateLikeCount(ctx, 7, 3))
	require.NoError(t, c.IncrLikeCount(ctx, 7))

	n, found, err := c.GetLikeCount(ctx, 7)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(4), n)
}
