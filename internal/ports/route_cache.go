package ports

import (
	"context"
	"errors"
	"pickup-route-service/internal/domain"
)

var ErrCacheMiss = errors.New("route cache miss")

// Persistent cache of route-finder results keyed by start/end pair.
type RouteCache interface {
	// Return the cached route for spec, or ErrCacheMiss.
	GetRoute(ctx context.Context, spec domain.PathSpecification) (*domain.Route, error)
	PutRoute(ctx context.Context, spec domain.PathSpecification, route *domain.Route) error
}
