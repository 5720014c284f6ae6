package domain

import "strconv"

// Immutable grid coordinate. The y axis grows downward (screen convention).
type Coordinate struct {
	X int
	Y int
}

func NewCoordinate(x, y int) Coordinate { return Coordinate{X: x, Y: y} }

func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

func (c Coordinate) Subtract(other Coordinate) Coordinate {
	return Coordinate{X: c.X - other.X, Y: c.Y - other.Y}
}

// Move one unit in direction d.
func (c Coordinate) AddDirection(d Direction) Coordinate {
	return c.Add(d.Delta())
}

// Move one unit against direction d.
func (c Coordinate) SubtractDirection(d Direction) Coordinate {
	return c.Subtract(d.Delta())
}

// Report whether X lies in the half-open range [low, up).
func (c Coordinate) XBetween(low, up int) bool {
	return low <= c.X && c.X < up
}

// Report whether Y lies in the half-open range [low, up).
func (c Coordinate) YBetween(low, up int) bool {
	return low <= c.Y && c.Y < up
}

// String renders the coordinate as "x, y", the form used in route and plan files.
func (c Coordinate) String() string {
	return strconv.Itoa(c.X) + ", " + strconv.Itoa(c.Y)
}
