package ports

import (
	"context"
	"pickup-route-service/internal/domain"
)

// Contract for the external shortest-route engine.
type RouteFinder interface {
	// Return a shortest route from spec.Start to spec.End.
	// Implementations are expected to be deterministic and safe for concurrent use.
	ShortestRoute(ctx context.Context, spec domain.PathSpecification) (*domain.Route, error)
}
