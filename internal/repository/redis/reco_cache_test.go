package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomart/domain"
)

func newTestCache(t *testing.T) (*RecoCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRecoCache(client, time.Minute), mr
}

func TestRecoCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	eco := 8.5
	rec := domain.Recommendation{
		Products: []domain.Product{
			{ID: 1, Brand: "Terra", EcoScore: &eco, IsActive: true, IsApproved: true},
			{ID: 2, Brand: "Verdant", IsActive: true, IsApproved: true},
		},
		Basis: domain.BasisPersonalized,
	}

	require.NoError(t, cache.Set(ctx, 7, 10, rec))

	got, ok, err := cache.Get(ctx, 7, 10)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, rec.Basis, got.Basis)
	require.Len(t, got.Products, 2)
	assert.Equal(t, uint64(1), got.Products[0].ID)
	require.NotNil(t, got.Products[0].EcoScore)
	assert.Equal(t, 8.5, *got.Products[0].EcoScore)
}

func TestRecoCache_MissOnUnknownKey(t *testing.T) {
	cache, _ := newTestCache(t)

	_, ok, err := cache.Get(context.Background(), 99, 10)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecoCache_KeyedByLimit(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	rec := domain.Recommendation{Basis: domain.BasisPersonalized}
	require.NoError(t, cache.Set(ctx, 7, 10, rec))

	_, ok, err := cache.Get(ctx, 7, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecoCache_EntryExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	rec := domain.Recommendation{Basis: domain.BasisFallback}
	require.NoError(t, cache.Set(ctx, 7, 10, rec))

	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, 7, 10)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecoCache_CorruptEntryReturnsError(t *testing.T) {
	cache, mr := newTestCache(t)

	require.NoError(t, mr.Set(cacheKey(7, 10), "not-json"))

	_, ok, err := cache.Get(context.Background(), 7, 10)
	assert.Error(t, err)
	assert.False(t, ok)
}
