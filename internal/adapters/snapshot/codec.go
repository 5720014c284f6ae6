// Package snapshot persists assembled route sets as versioned JSON
// documents so later runs can skip the pairwise route-finder calls.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"pickup-route-service/internal/domain"
)

// Version is the only snapshot layout this package reads and writes.
const Version = 1

var (
	ErrUnsupportedSnapshotVersion = errors.New("unsupported snapshot version")
	ErrCorruptSnapshot            = errors.New("corrupt snapshot")
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type pathSpec struct {
	Start point `json:"start"`
	End   point `json:"end"`
}

type route struct {
	Start point `json:"start"`
	Moves []int `json:"moves"`
}

type document struct {
	Version        int       `json:"version"`
	Stops          []point   `json:"stops"`
	Spec           pathSpec  `json:"spec"`
	StopToStop     [][]route `json:"stop_to_stop"`
	StartToStop    []route   `json:"start_to_stop"`
	StopToEnd      []route   `json:"stop_to_end"`
	Distances      [][]int   `json:"distances"`
	StartDistances []int     `json:"start_distances"`
	EndDistances   []int     `json:"end_distances"`
}

func toPoint(c domain.Coordinate) point { return point{X: c.X, Y: c.Y} }

func (p point) coordinate() domain.Coordinate { return domain.NewCoordinate(p.X, p.Y) }

func toRoute(r *domain.Route) route {
	moves := r.Moves()
	codes := make([]int, len(moves))
	for i, d := range moves {
		codes[i] = d.Code()
	}
	return route{Start: toPoint(r.Start()), Moves: codes}
}

func (r route) domainRoute() (*domain.Route, error) {
	moves := make([]domain.Direction, len(r.Moves))
	for i, code := range r.Moves {
		d, err := domain.DirectionFromCode(code)
		if err != nil {
			return nil, err
		}
		moves[i] = d
	}
	return domain.NewRouteFromMoves(r.Start.coordinate(), moves), nil
}

func toRoutes(rs []*domain.Route) []route {
	out := make([]route, len(rs))
	for i, r := range rs {
		out[i] = toRoute(r)
	}
	return out
}

func fromRoutes(rs []route) ([]*domain.Route, error) {
	out := make([]*domain.Route, len(rs))
	for i, r := range rs {
		dr, err := r.domainRoute()
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
		out[i] = dr
	}
	return out, nil
}

// Marshal encodes an assembled route set. Unassembled sets are rejected.
func Marshal(rs *domain.RouteSet) ([]byte, error) {
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	doc := document{
		Version:        Version,
		Stops:          make([]point, len(rs.Stops)),
		Spec:           pathSpec{Start: toPoint(rs.Spec.Start), End: toPoint(rs.Spec.End)},
		StopToStop:     make([][]route, len(rs.StopToStop)),
		StartToStop:    toRoutes(rs.StartToStop),
		StopToEnd:      toRoutes(rs.StopToEnd),
		Distances:      rs.Distances,
		StartDistances: rs.StartDistances,
		EndDistances:   rs.EndDistances,
	}
	for i, c := range rs.Stops {
		doc.Stops[i] = toPoint(c)
	}
	for i, row := range rs.StopToStop {
		doc.StopToStop[i] = toRoutes(row)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return b, nil
}

// Unmarshal decodes a snapshot verbatim; distances are read, not
// recomputed, and must agree with the stored routes.
func Unmarshal(data []byte) (*domain.RouteSet, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSnapshotVersion, doc.Version)
	}

	stops := make([]domain.Coordinate, len(doc.Stops))
	for i, p := range doc.Stops {
		stops[i] = p.coordinate()
	}
	rs := domain.NewRouteSet(stops, domain.NewPathSpecification(doc.Spec.Start.coordinate(), doc.Spec.End.coordinate()))

	var err error
	rs.StopToStop = make([][]*domain.Route, len(doc.StopToStop))
	for i, row := range doc.StopToStop {
		if rs.StopToStop[i], err = fromRoutes(row); err != nil {
			return nil, fmt.Errorf("%w: stop_to_stop row %d: %w", ErrCorruptSnapshot, i, err)
		}
	}
	if rs.StartToStop, err = fromRoutes(doc.StartToStop); err != nil {
		return nil, fmt.Errorf("%w: start_to_stop: %w", ErrCorruptSnapshot, err)
	}
	if rs.StopToEnd, err = fromRoutes(doc.StopToEnd); err != nil {
		return nil, fmt.Errorf("%w: stop_to_end: %w", ErrCorruptSnapshot, err)
	}
	rs.Distances = doc.Distances
	rs.StartDistances = doc.StartDistances
	rs.EndDistances = doc.EndDistances

	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	return rs, nil
}

// Encode writes the snapshot of rs to w.
func Encode(w io.Writer, rs *domain.RouteSet) error {
	b, err := Marshal(rs)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Decode reads one snapshot from r.
func Decode(r io.Reader) (*domain.RouteSet, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Unmarshal(b)
}
