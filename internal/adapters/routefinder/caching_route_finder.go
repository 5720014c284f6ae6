package routefinder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/ports"
)

// CachingRouteFinder consults a persistent RouteCache before delegating to
// the wrapped finder, and stores fresh results back into the cache.
//
// Cache failures never fail a lookup: read errors are treated as misses and
// write errors are logged.
type CachingRouteFinder struct {
	inner ports.RouteFinder
	cache ports.RouteCache
}

func NewCachingRouteFinder(inner ports.RouteFinder, cache ports.RouteCache) *CachingRouteFinder {
	return &CachingRouteFinder{inner: inner, cache: cache}
}

func (c *CachingRouteFinder) ShortestRoute(ctx context.Context, spec domain.PathSpecification) (*domain.Route, error) {
	if c.cache != nil {
		route, err := c.cache.GetRoute(ctx, spec)
		switch {
		case err == nil:
			return route, nil
		case !errors.Is(err, ports.ErrCacheMiss):
			log.Printf("route cache read failed spec=%q: %v", spec, err)
		}
	}

	route, err := c.inner.ShortestRoute(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("caching route finder: %w", err)
	}

	if c.cache != nil && route != nil {
		if err := c.cache.PutRoute(ctx, spec, route); err != nil {
			log.Printf("route cache write failed spec=%q: %v", spec, err)
		}
	}

	return route, nil
}
