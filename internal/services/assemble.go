package services

import (
	"context"
	"fmt"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/obs"
	"pickup-route-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 8

// Assemble fills rs with a shortest route for every ordered pair of stops
// (including each stop to itself), from the journey start to every stop and
// from every stop to the journey end, then derives the distance tables.
//
// Route-finder calls run concurrently on at most workers goroutines. The
// first failure cancels the remaining calls and leaves rs unassembled.
func Assemble(
	ctx context.Context,
	rs *domain.RouteSet,
	finder ports.RouteFinder,
	workers int,
) (err error) {
	defer obs.Time(ctx, "routeset.Assemble")(&err)

	if rs == nil {
		return fmt.Errorf("assemble route set: route set is nil")
	}
	if workers < 1 {
		workers = 1
	}

	n := rs.Len()
	if n > 0 && finder == nil {
		return fmt.Errorf("assemble route set: route finder is nil")
	}
	stopToStop := make([][]*domain.Route, n)
	startToStop := make([]*domain.Route, n)
	stopToEnd := make([]*domain.Route, n)
	for i := range stopToStop {
		stopToStop[i] = make([]*domain.Route, n)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	// Each task owns exactly one cell of the preallocated tables.
	fetch := func(label string, spec domain.PathSpecification, cell **domain.Route) {
		g.Go(func() error {
			r, err := finder.ShortestRoute(gctx, spec)
			if err != nil {
				return fmt.Errorf("assemble route set: %s (%s): %w", label, spec, err)
			}
			if r == nil {
				return fmt.Errorf("assemble route set: %s (%s): route finder returned no route", label, spec)
			}
			*cell = r
			return nil
		})
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fetch(fmt.Sprintf("stop %d -> stop %d", i, j),
				domain.NewPathSpecification(rs.Stops[i], rs.Stops[j]), &stopToStop[i][j])
		}
		fetch(fmt.Sprintf("start -> stop %d", i),
			domain.NewPathSpecification(rs.Spec.Start, rs.Stops[i]), &startToStop[i])
		fetch(fmt.Sprintf("stop %d -> end", i),
			domain.NewPathSpecification(rs.Stops[i], rs.Spec.End), &stopToEnd[i])
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := rs.SetRoutes(stopToStop, startToStop, stopToEnd); err != nil {
		return fmt.Errorf("assemble route set: %w", err)
	}

	return nil
}
