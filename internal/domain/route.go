package domain

import (
	"io"
	"strconv"
	"strings"
)

// Route is an ordered sequence of unit moves anchored at a start coordinate.
// It is built by a route finder through Add and RemoveLast and is treated as
// read-only once stored in a RouteSet.
type Route struct {
	start Coordinate
	moves []Direction
}

func NewRoute(start Coordinate) *Route {
	return &Route{start: start}
}

// Build a route from an existing move list. The slice is copied.
func NewRouteFromMoves(start Coordinate, moves []Direction) *Route {
	return &Route{start: start, moves: append([]Direction(nil), moves...)}
}

// Append one move.
func (r *Route) Add(d Direction) {
	r.moves = append(r.moves, d)
}

// RemoveLast pops and returns the last move. Callers must check Size() > 0;
// popping an empty route panics.
func (r *Route) RemoveLast() Direction {
	last := r.moves[len(r.moves)-1]
	r.moves = r.moves[:len(r.moves)-1]
	return last
}

func (r *Route) Size() int { return len(r.moves) }

func (r *Route) Start() Coordinate { return r.start }

// Moves returns a copy of the move list.
func (r *Route) Moves() []Direction {
	return append([]Direction(nil), r.moves...)
}

// End walks the moves from the start coordinate.
func (r *Route) End() Coordinate {
	c := r.start
	for _, d := range r.moves {
		c = c.AddDirection(d)
	}
	return c
}

// ShorterThan compares move counts only.
func (r *Route) ShorterThan(other *Route) bool {
	return r.Size() < other.Size()
}

func (r *Route) Equal(other *Route) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.start != other.start || len(r.moves) != len(other.moves) {
		return false
	}
	for i := range r.moves {
		if r.moves[i] != other.moves[i] {
			return false
		}
	}
	return true
}

func (r *Route) Clone() *Route {
	return NewRouteFromMoves(r.start, r.moves)
}

func (r *Route) writeMoves(b *strings.Builder) {
	for _, d := range r.moves {
		b.WriteString(strconv.Itoa(d.Code()))
		b.WriteString(";\n")
	}
}

// String renders the route file format: move count, start, then the moves.
func (r *Route) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(r.moves)))
	b.WriteString(";\n")
	b.WriteString(r.start.String())
	b.WriteString(";\n")
	r.writeMoves(&b)
	return b.String()
}

func (r *Route) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
