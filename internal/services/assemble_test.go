package services

import (
	"context"
	"errors"
	"pickup-route-service/internal/adapters/routefinder"
	"pickup-route-service/internal/domain"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFinder answers with an L-shaped route: horizontal leg first.
type gridFinder struct {
	calls atomic.Int32
	fail  domain.PathSpecification
	err   error
}

func (g *gridFinder) ShortestRoute(ctx context.Context, spec domain.PathSpecification) (*domain.Route, error) {
	g.calls.Add(1)
	if g.err != nil && spec == g.fail {
		return nil, g.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := domain.NewRoute(spec.Start)
	for x := spec.Start.X; x < spec.End.X; x++ {
		r.Add(domain.East)
	}
	for x := spec.Start.X; x > spec.End.X; x-- {
		r.Add(domain.West)
	}
	for y := spec.Start.Y; y < spec.End.Y; y++ {
		r.Add(domain.South)
	}
	for y := spec.Start.Y; y > spec.End.Y; y-- {
		r.Add(domain.North)
	}
	return r, nil
}

type nilFinder struct{}

func (nilFinder) ShortestRoute(context.Context, domain.PathSpecification) (*domain.Route, error) {
	return nil, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestAssembleFillsEveryTable(t *testing.T) {
	stops := []domain.Coordinate{{X: 1, Y: 1}, {X: 5, Y: 2}, {X: 0, Y: 7}, {X: 3, Y: 3}}
	spec := domain.NewPathSpecification(domain.Coordinate{X: 0, Y: 0}, domain.Coordinate{X: 9, Y: 9})
	finder := &gridFinder{}

	rs := domain.NewRouteSet(stops, spec)
	require.NoError(t, Assemble(context.Background(), rs, finder, 3))

	n := len(stops)
	assert.Equal(t, int32(n*n+2*n), finder.calls.Load())
	require.True(t, rs.Assembled())
	require.NoError(t, rs.Validate())

	manhattan := func(a, b domain.Coordinate) int { return abs(a.X-b.X) + abs(a.Y-b.Y) }
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r := rs.StopToStop[i][j]
			assert.Equal(t, stops[i], r.Start())
			assert.Equal(t, stops[j], r.End())
			assert.Equal(t, r.Size(), rs.Distances[i][j])
			assert.Equal(t, manhattan(stops[i], stops[j]), rs.Distances[i][j])
		}
		assert.Equal(t, 0, rs.Distances[i][i])
		assert.Equal(t, spec.Start, rs.StartToStop[i].Start())
		assert.Equal(t, stops[i], rs.StartToStop[i].End())
		assert.Equal(t, rs.StartToStop[i].Size(), rs.StartDistances[i])
		assert.Equal(t, stops[i], rs.StopToEnd[i].Start())
		assert.Equal(t, spec.End, rs.StopToEnd[i].End())
		assert.Equal(t, rs.StopToEnd[i].Size(), rs.EndDistances[i])
	}
}

func TestAssembleSingleStopPlan(t *testing.T) {
	stop := domain.Coordinate{X: 1, Y: 1}
	spec := domain.NewPathSpecification(domain.Coordinate{X: 0, Y: 0}, domain.Coordinate{X: 2, Y: 2})

	finder := routefinder.NewMockRouteFinder(map[domain.PathSpecification]*domain.Route{
		domain.NewPathSpecification(stop, stop):       domain.NewRoute(stop),
		domain.NewPathSpecification(spec.Start, stop): domain.NewRouteFromMoves(spec.Start, []domain.Direction{domain.East, domain.South}),
		domain.NewPathSpecification(stop, spec.End):   domain.NewRouteFromMoves(stop, []domain.Direction{domain.South, domain.East}),
	})

	rs := domain.NewRouteSet([]domain.Coordinate{stop}, spec)
	require.NoError(t, Assemble(context.Background(), rs, finder, 0))
	assert.Equal(t, 3, finder.Calls())

	plan, err := rs.ActionPlan([]int{0})
	require.NoError(t, err)
	assert.Equal(t, "5;\n0, 0;\n0;\n3;\ntake product #1;\n3;\n0;\n", plan)
}

func TestAssembleNoStops(t *testing.T) {
	finder := &gridFinder{}
	rs := domain.NewRouteSet(nil, domain.NewPathSpecification(domain.Coordinate{}, domain.Coordinate{X: 3, Y: 3}))

	require.NoError(t, Assemble(context.Background(), rs, finder, 4))

	assert.Zero(t, finder.calls.Load())
	assert.True(t, rs.Assembled())
	assert.Empty(t, rs.Distances)
	assert.Empty(t, rs.StartDistances)
	assert.Empty(t, rs.EndDistances)
}

func TestAssembleNoStopsWithoutFinder(t *testing.T) {
	rs := domain.NewRouteSet(nil, domain.NewPathSpecification(domain.Coordinate{}, domain.Coordinate{X: 3, Y: 3}))

	require.NoError(t, Assemble(context.Background(), rs, nil, 1))
	assert.True(t, rs.Assembled())
}

func TestAssembleRequiresFinderForStops(t *testing.T) {
	rs := domain.NewRouteSet([]domain.Coordinate{{X: 1, Y: 1}}, domain.PathSpecification{})

	err := Assemble(context.Background(), rs, nil, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "route finder is nil")
	assert.False(t, rs.Assembled())
}

func TestAssemblePropagatesFinderError(t *testing.T) {
	stops := []domain.Coordinate{{X: 1, Y: 1}, {X: 2, Y: 2}}
	boom := errors.New("engine unavailable")
	finder := &gridFinder{
		fail: domain.NewPathSpecification(stops[1], stops[0]),
		err:  boom,
	}

	rs := domain.NewRouteSet(stops, domain.NewPathSpecification(domain.Coordinate{}, domain.Coordinate{X: 4, Y: 4}))
	err := Assemble(context.Background(), rs, finder, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stop 1 -> stop 0")
	assert.False(t, rs.Assembled())

	_, err = rs.ActionPlan([]int{0, 1})
	assert.ErrorIs(t, err, domain.ErrNotAssembled)
}

func TestAssembleRejectsNilRoute(t *testing.T) {
	rs := domain.NewRouteSet([]domain.Coordinate{{X: 1, Y: 1}}, domain.PathSpecification{})

	err := Assemble(context.Background(), rs, nilFinder{}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned no route")
	assert.False(t, rs.Assembled())
}

func TestAssembleHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rs := domain.NewRouteSet([]domain.Coordinate{{X: 1, Y: 1}}, domain.PathSpecification{})
	err := Assemble(ctx, rs, &gridFinder{}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
