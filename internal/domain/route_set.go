package domain

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNotAssembled        = errors.New("route set is not assembled")
	ErrEmptyOrder          = errors.New("order must not be empty")
	ErrStopIndexOutOfRange = errors.New("stop index out of range")
	ErrInconsistentTables  = errors.New("route set tables are inconsistent")
)

// RouteSet holds the pairwise routes between pickup stops and the journey
// endpoints, plus the distance tables derived from them.
//
// Stop indices are the stable identifiers used by every table. The route
// tables are nil until SetRoutes runs; afterwards each distance entry equals
// the size of the matching route.
type RouteSet struct {
	Stops []Coordinate
	Spec  PathSpecification

	StopToStop  [][]*Route
	StartToStop []*Route
	StopToEnd   []*Route

	Distances      [][]int
	StartDistances []int
	EndDistances   []int
}

func NewRouteSet(stops []Coordinate, spec PathSpecification) *RouteSet {
	return &RouteSet{
		Stops: append([]Coordinate(nil), stops...),
		Spec:  spec,
	}
}

// Number of stops (not counting journey start and end).
func (s *RouteSet) Len() int { return len(s.Stops) }

// Report whether the route and distance tables are populated.
func (s *RouteSet) Assembled() bool {
	return s.StopToStop != nil && s.StartToStop != nil && s.StopToEnd != nil &&
		s.Distances != nil && s.StartDistances != nil && s.EndDistances != nil
}

// SetRoutes installs fully computed route tables and derives the distances.
func (s *RouteSet) SetRoutes(stopToStop [][]*Route, startToStop, stopToEnd []*Route) error {
	n := len(s.Stops)
	if err := checkRouteShapes(n, stopToStop, startToStop, stopToEnd); err != nil {
		return fmt.Errorf("set routes: %w", err)
	}

	// nil tables mean "no stops"; keep them non-nil so Assembled reports true.
	if stopToStop == nil {
		stopToStop = [][]*Route{}
	}
	if startToStop == nil {
		startToStop = []*Route{}
	}
	if stopToEnd == nil {
		stopToEnd = []*Route{}
	}

	s.StopToStop = stopToStop
	s.StartToStop = startToStop
	s.StopToEnd = stopToEnd
	s.DeriveDistances()

	return nil
}

// DeriveDistances rebuilds the three distance tables from route sizes.
// Running it again on unchanged routes yields identical tables.
func (s *RouteSet) DeriveDistances() {
	n := len(s.Stops)
	s.Distances = make([][]int, n)
	s.StartDistances = make([]int, n)
	s.EndDistances = make([]int, n)

	for i := 0; i < n; i++ {
		s.Distances[i] = make([]int, n)
		for j := 0; j < n; j++ {
			s.Distances[i][j] = s.StopToStop[i][j].Size()
		}
		s.StartDistances[i] = s.StartToStop[i].Size()
		s.EndDistances[i] = s.StopToEnd[i].Size()
	}
}

// Validate checks table shapes and that every distance equals its route size.
func (s *RouteSet) Validate() error {
	if !s.Assembled() {
		return ErrNotAssembled
	}

	n := len(s.Stops)
	if err := checkRouteShapes(n, s.StopToStop, s.StartToStop, s.StopToEnd); err != nil {
		return err
	}
	if len(s.Distances) != n || len(s.StartDistances) != n || len(s.EndDistances) != n {
		return fmt.Errorf("%w: distance tables do not have %d rows", ErrInconsistentTables, n)
	}

	for i := 0; i < n; i++ {
		if len(s.Distances[i]) != n {
			return fmt.Errorf("%w: distance row %d has %d columns, want %d", ErrInconsistentTables, i, len(s.Distances[i]), n)
		}
		for j := 0; j < n; j++ {
			if s.Distances[i][j] != s.StopToStop[i][j].Size() {
				return fmt.Errorf("%w: distance[%d][%d]=%d but route size is %d",
					ErrInconsistentTables, i, j, s.Distances[i][j], s.StopToStop[i][j].Size())
			}
		}
		if s.StartDistances[i] != s.StartToStop[i].Size() {
			return fmt.Errorf("%w: start distance %d=%d but route size is %d",
				ErrInconsistentTables, i, s.StartDistances[i], s.StartToStop[i].Size())
		}
		if s.EndDistances[i] != s.StopToEnd[i].Size() {
			return fmt.Errorf("%w: end distance %d=%d but route size is %d",
				ErrInconsistentTables, i, s.EndDistances[i], s.StopToEnd[i].Size())
		}
	}

	return nil
}

// Equal compares stops, spec, all route tables and all distance tables.
func (s *RouteSet) Equal(other *RouteSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Spec != other.Spec || !slices.Equal(s.Stops, other.Stops) {
		return false
	}
	if !slices.EqualFunc(s.Distances, other.Distances, func(a, b []int) bool { return slices.Equal(a, b) }) ||
		!slices.Equal(s.StartDistances, other.StartDistances) ||
		!slices.Equal(s.EndDistances, other.EndDistances) {
		return false
	}

	return slices.EqualFunc(s.StopToStop, other.StopToStop, equalRoutes) &&
		equalRoutes(s.StartToStop, other.StartToStop) &&
		equalRoutes(s.StopToEnd, other.StopToEnd)
}

func equalRoutes(a, b []*Route) bool {
	return slices.EqualFunc(a, b, (*Route).Equal)
}

func checkRouteShapes(n int, stopToStop [][]*Route, startToStop, stopToEnd []*Route) error {
	if len(stopToStop) != n || len(startToStop) != n || len(stopToEnd) != n {
		return fmt.Errorf(
			"%w: want %d rows, got stop_to_stop=%d start_to_stop=%d stop_to_end=%d",
			ErrInconsistentTables, n, len(stopToStop), len(startToStop), len(stopToEnd),
		)
	}

	for i := 0; i < n; i++ {
		if len(stopToStop[i]) != n {
			return fmt.Errorf("%w: stop_to_stop row %d has %d columns, want %d", ErrInconsistentTables, i, len(stopToStop[i]), n)
		}
		for j, r := range stopToStop[i] {
			if r == nil {
				return fmt.Errorf("%w: missing route stop %d -> stop %d", ErrInconsistentTables, i, j)
			}
		}
		if startToStop[i] == nil {
			return fmt.Errorf("%w: missing route start -> stop %d", ErrInconsistentTables, i)
		}
		if stopToEnd[i] == nil {
			return fmt.Errorf("%w: missing route stop %d -> end", ErrInconsistentTables, i)
		}
	}

	return nil
}
