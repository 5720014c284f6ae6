package ports

import (
	"context"
	"pickup-route-service/internal/domain"
)

// Port: a boundary for retrieving pickup stops from a data source.
// The position of a stop in the returned slice is its stop index.
type StopRepository interface {
	ListStops(ctx context.Context) ([]domain.Coordinate, error)
}
