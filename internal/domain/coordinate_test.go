package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateDirectionRoundTrip(t *testing.T) {
	points := []Coordinate{{0, 0}, {3, -7}, {-12, 40}}
	for _, c := range points {
		for _, d := range Directions {
			assert.Equal(t, c, c.AddDirection(d).SubtractDirection(d), "coord=%v dir=%v", c, d)
		}
	}
}

func TestCoordinateAddDirectionYGrowsDownward(t *testing.T) {
	origin := NewCoordinate(5, 5)

	assert.Equal(t, Coordinate{6, 5}, origin.AddDirection(East))
	assert.Equal(t, Coordinate{4, 5}, origin.AddDirection(West))
	assert.Equal(t, Coordinate{5, 4}, origin.AddDirection(North))
	assert.Equal(t, Coordinate{5, 6}, origin.AddDirection(South))
}

func TestCoordinateArithmetic(t *testing.T) {
	a := NewCoordinate(2, 3)
	b := NewCoordinate(-1, 4)

	assert.Equal(t, Coordinate{1, 7}, a.Add(b))
	assert.Equal(t, Coordinate{3, -1}, a.Subtract(b))
	assert.Equal(t, Coordinate{2, 3}, a, "operations must not mutate the receiver")
}

func TestCoordinateBetween(t *testing.T) {
	c := NewCoordinate(2, 5)

	t.Run("x half-open", func(t *testing.T) {
		assert.True(t, c.XBetween(2, 3))
		assert.True(t, c.XBetween(0, 10))
		assert.False(t, c.XBetween(0, 2))
		assert.False(t, c.XBetween(3, 10))
	})

	t.Run("y half-open", func(t *testing.T) {
		assert.True(t, c.YBetween(5, 6))
		assert.False(t, c.YBetween(0, 5))
		assert.False(t, c.YBetween(6, 9))
	})
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "3, -4", NewCoordinate(3, -4).String())
}
