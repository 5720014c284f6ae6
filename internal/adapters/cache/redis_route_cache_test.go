package cache

import (
	"context"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/ports"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisRouteCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewRedisRouteCache(client, ttl), mr
}

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	cache, mr := newRedisCache(t, time.Hour)
	ctx := context.Background()

	spec := domain.NewPathSpecification(domain.Coordinate{X: 1, Y: 2}, domain.Coordinate{X: 0, Y: 4})
	route := domain.NewRouteFromMoves(spec.Start, []domain.Direction{domain.South, domain.West, domain.South})

	_, err := cache.GetRoute(ctx, spec)
	assert.ErrorIs(t, err, ports.ErrCacheMiss)

	require.NoError(t, cache.PutRoute(ctx, spec, route))

	stored, err := mr.Get(RouteKey(spec))
	require.NoError(t, err)
	assert.Equal(t, "323", stored)

	got, err := cache.GetRoute(ctx, spec)
	require.NoError(t, err)
	assert.True(t, route.Equal(got))
}

func TestRedisRouteCacheEmptyRoute(t *testing.T) {
	cache, _ := newRedisCache(t, time.Hour)
	ctx := context.Background()
	spec := domain.NewPathSpecification(domain.Coordinate{X: 3, Y: 3}, domain.Coordinate{X: 3, Y: 3})

	require.NoError(t, cache.PutRoute(ctx, spec, domain.NewRoute(spec.Start)))

	got, err := cache.GetRoute(ctx, spec)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Size())
	assert.Equal(t, spec.Start, got.Start())
}

func TestRedisRouteCacheExpires(t *testing.T) {
	cache, mr := newRedisCache(t, time.Minute)
	ctx := context.Background()
	spec := domain.NewPathSpecification(domain.Coordinate{}, domain.Coordinate{X: 1})

	require.NoError(t, cache.PutRoute(ctx, spec, domain.NewRouteFromMoves(spec.Start, []domain.Direction{domain.East})))
	mr.FastForward(2 * time.Minute)

	_, err := cache.GetRoute(ctx, spec)
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestRedisRouteCacheCorruptEntry(t *testing.T) {
	cache, mr := newRedisCache(t, time.Hour)
	spec := domain.NewPathSpecification(domain.Coordinate{}, domain.Coordinate{X: 1})
	require.NoError(t, mr.Set(RouteKey(spec), "07"))

	_, err := cache.GetRoute(context.Background(), spec)
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)
}

func TestRouteKey(t *testing.T) {
	spec := domain.NewPathSpecification(domain.Coordinate{X: -1, Y: 2}, domain.Coordinate{X: 3, Y: 4})
	assert.Equal(t, "route:-1,2:3,4", RouteKey(spec))
}
