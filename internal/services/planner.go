package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/ports"
	"slices"
)

// Planner produces an assembled RouteSet for a stop list, reusing a stored
// snapshot when one matches so the pairwise route-finder calls are skipped.
type Planner struct {
	Finder      ports.RouteFinder
	Snapshots   ports.SnapshotStore // optional
	SnapshotKey string
	Workers     int
}

func (p *Planner) Prepare(
	ctx context.Context,
	stops []domain.Coordinate,
	spec domain.PathSpecification,
) (*domain.RouteSet, error) {
	if p.Snapshots != nil {
		rs, err := p.Snapshots.Load(ctx, p.SnapshotKey)
		switch {
		case err == nil && matches(rs, stops, spec):
			log.Printf("planner: reusing snapshot key=%q stops=%d", p.SnapshotKey, rs.Len())
			return rs, nil
		case err == nil:
			log.Printf("planner: snapshot key=%q does not match request, reassembling", p.SnapshotKey)
		case errors.Is(err, ports.ErrSnapshotNotFound):
		default:
			log.Printf("planner: load snapshot key=%q: %v", p.SnapshotKey, err)
		}
	}

	rs := domain.NewRouteSet(stops, spec)
	if err := Assemble(ctx, rs, p.Finder, p.Workers); err != nil {
		return nil, fmt.Errorf("prepare route set: %w", err)
	}

	if p.Snapshots != nil {
		if err := p.Snapshots.Save(ctx, p.SnapshotKey, rs); err != nil {
			log.Printf("planner: save snapshot key=%q: %v", p.SnapshotKey, err)
		}
	}

	return rs, nil
}

func matches(rs *domain.RouteSet, stops []domain.Coordinate, spec domain.PathSpecification) bool {
	return rs != nil && rs.Spec == spec && slices.Equal(rs.Stops, stops)
}
