package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsnd-trivia/trivia-service/internal/models"
)

func setupCacheTest(t *testing.T) (*Helper, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewHelper(client, CategoryCacheConfig.Prefix), server
}

func TestHelperRoundTrip(t *testing.T) {
	helper, _ := setupCacheTest(t)
	ctx := context.Background()

	category := &models.Category{ID: 4, Type: "History"}
	require.NoError(t, helper.Set(ctx, "id:4", category, time.Minute))

	var got models.Category
	require.NoError(t, helper.Get(ctx, "id:4", &got))
	assert.Equal(t, uint(4), got.ID)
	assert.Equal(t, "History", got.Type)
}

func TestHelperMiss(t *testing.T) {
	helper, _ := setupCacheTest(t)

	var got models.Category
	err := helper.Get(context.Background(), "id:404", &got)
	assert.ErrorIs(t, err, ErrCacheNotFound)
}

func TestHelperTTLExpiry(t *testing.T) {
	helper, server := setupCacheTest(t)
	ctx := context.Background()

	require.NoError(t, helper.Set(ctx, "id:4", &models.Category{ID: 4}, time.Minute))
	server.FastForward(2 * time.Minute)

	var got models.Category
	err := helper.Get(ctx, "id:4", &got)
	assert.ErrorIs(t, err, ErrCacheNotFound)
}

func TestHelperDelete(t *testing.T) {
	helper, _ := setupCacheTest(t)
	ctx := context.Background()

	require.NoError(t, helper.Set(ctx, "id:4", &models.Category{ID: 4}, time.Minute))
	require.NoError(t, helper.Delete(ctx, "id:4"))

	var got models.Category
	assert.ErrorIs(t, helper.Get(ctx, "id:4", &got), ErrCacheNotFound)
}

func TestHelperInvalidatePattern(t *testing.T) {
	helper, server := setupCacheTest(t)
	ctx := context.Background()

	require.NoError(t, helper.Set(ctx, "id:1", &models.Category{ID: 1}, time.Minute))
	require.NoError(t, helper.Set(ctx, "id:2", &models.Category{ID: 2}, time.Minute))

	require.NoError(t, helper.InvalidatePattern(ctx, "id:*"))

	assert.False(t, server.Exists(CategoryCacheConfig.Prefix+"id:1"))
	assert.False(t, server.Exists(CategoryCacheConfig.Prefix+"id:2"))
}

func TestHelperDegradesWithoutClient(t *testing.T) {
	helper := NewHelper(nil, "x:")
	ctx := context.Background()

	assert.ErrorIs(t, helper.Get(ctx, "k", &struct{}{}), ErrCacheNotAvailable)
	assert.NoError(t, helper.Set(ctx, "k", "v", time.Minute))
	assert.NoError(t, helper.Delete(ctx, "k"))
	assert.NoError(t, helper.InvalidatePattern(ctx, "*"))
}
