package ports

import (
	"context"
	"errors"
	"pickup-route-service/internal/domain"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// Port: persistence of assembled route sets, so the O(n²) route-finder
// calls can be skipped on later runs.
type SnapshotStore interface {
	// Load the route set stored under key, or ErrSnapshotNotFound.
	Load(ctx context.Context, key string) (*domain.RouteSet, error)
	Save(ctx context.Context, key string, rs *domain.RouteSet) error
}
