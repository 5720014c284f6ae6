package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidDirection = errors.New("invalid direction")

// Direction is a unit move on the grid. Its integer value is the stable
// serialization code written to route and action-plan files.
type Direction int

const (
	East  Direction = 0
	North Direction = 1
	West  Direction = 2
	South Direction = 3
)

// Directions lists every direction in code order.
var Directions = [...]Direction{East, North, West, South}

func (d Direction) Code() int { return int(d) }

// Decode a serialization code back into a Direction.
func DirectionFromCode(code int) (Direction, error) {
	switch Direction(code) {
	case East, North, West, South:
		return Direction(code), nil
	}
	return 0, fmt.Errorf("decode direction code %d: %w", code, ErrInvalidDirection)
}

// Delta returns the unit displacement of d. North decreases y, South increases it.
// Any value outside the four directions is a programming error.
func (d Direction) Delta() Coordinate {
	switch d {
	case East:
		return Coordinate{X: 1, Y: 0}
	case North:
		return Coordinate{X: 0, Y: -1}
	case West:
		return Coordinate{X: -1, Y: 0}
	case South:
		return Coordinate{X: 0, Y: 1}
	}
	panic(fmt.Sprintf("domain: no delta for direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}
