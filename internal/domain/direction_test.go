package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionCodes(t *testing.T) {
	tests := []struct {
		dir  Direction
		code int
		name string
	}{
		{East, 0, "east"},
		{North, 1, "north"},
		{West, 2, "west"},
		{South, 3, "south"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.dir.Code())
			assert.Equal(t, tt.name, tt.dir.String())

			decoded, err := DirectionFromCode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.dir, decoded)
		})
	}
}

func TestDirectionCodesAreBijective(t *testing.T) {
	seen := map[int]Direction{}
	for _, d := range Directions {
		_, dup := seen[d.Code()]
		require.False(t, dup, "code %d used twice", d.Code())
		seen[d.Code()] = d
	}
	assert.Len(t, seen, 4)
	for code := 0; code < 4; code++ {
		assert.Contains(t, seen, code)
	}
}

func TestDirectionFromCodeRejectsUnknown(t *testing.T) {
	for _, code := range []int{-1, 4, 99} {
		_, err := DirectionFromCode(code)
		if !errors.Is(err, ErrInvalidDirection) {
			t.Fatalf("code %d: want ErrInvalidDirection, got %v", code, err)
		}
	}
}

func TestDirectionDeltaPanicsOutsideEnum(t *testing.T) {
	assert.Panics(t, func() { Direction(7).Delta() })
}
