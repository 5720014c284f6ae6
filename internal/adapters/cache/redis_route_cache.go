package cache

import (
	"context"
	"errors"
	"fmt"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/obs"
	"pickup-route-service/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection settings for the Redis route cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// RedisRouteCache stores route-finder results in Redis with a TTL.
// Entries are digit strings of move codes; the start comes from the key.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

// RouteKey generates the cache key for a start/end pair.
func RouteKey(spec domain.PathSpecification) string {
	return fmt.Sprintf("route:%d,%d:%d,%d", spec.Start.X, spec.Start.Y, spec.End.X, spec.End.Y)
}

func (c *RedisRouteCache) GetRoute(
	ctx context.Context,
	spec domain.PathSpecification,
) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "route.cache.redis.GetRoute")(&err)

	moves, err := c.client.Get(ctx, RouteKey(spec)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get route cache %s: %w", spec, err)
	}

	return decodeMoves(spec.Start, moves)
}

func (c *RedisRouteCache) PutRoute(ctx context.Context, spec domain.PathSpecification, route *domain.Route) error {
	if route == nil {
		return fmt.Errorf("put route cache %s: nil route", spec)
	}

	if err := c.client.Set(ctx, RouteKey(spec), encodeMoves(route), c.ttl).Err(); err != nil {
		return fmt.Errorf("put route cache %s: %w", spec, err)
	}

	return nil
}
