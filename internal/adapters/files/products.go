package files

import (
	"fmt"
	"io"
	"os"
	"pickup-route-service/internal/domain"
)

// ReadProducts loads the pickup stop locations from a product file.
func ReadProducts(path string) ([]domain.Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read products %q: %w", path, err)
	}
	defer f.Close()

	stops, err := ParseProducts(f)
	if err != nil {
		return nil, fmt.Errorf("read products %q: %w", path, err)
	}

	return stops, nil
}

// ParseProducts reads a product file. Only the leading integer of the first
// line (the product count) is used; each following line is
// "<index>,<x>,<y>" and the index column is ignored. Stops keep file order.
func ParseProducts(r io.Reader) ([]domain.Coordinate, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("parse products: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("parse products: %w: empty file", ErrMalformedInput)
	}

	count, err := parseInt(productSep.Split(lines[0], -1)[0], 1)
	if err != nil {
		return nil, fmt.Errorf("parse products: count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("parse products: %w: negative count %d", ErrMalformedInput, count)
	}
	if len(lines) < count+1 {
		return nil, fmt.Errorf("parse products: %w: count is %d but only %d product lines", ErrMalformedInput, count, len(lines)-1)
	}

	stops := make([]domain.Coordinate, 0, count)
	for i := 1; i <= count; i++ {
		parts := productSep.Split(lines[i], -1)
		if len(parts) < 3 {
			return nil, fmt.Errorf("parse products: line %d: %w: want \"index,x,y\", got %q", i+1, ErrMalformedInput, lines[i])
		}

		x, err := parseInt(parts[1], i+1)
		if err != nil {
			return nil, fmt.Errorf("parse products: %w", err)
		}
		y, err := parseInt(parts[2], i+1)
		if err != nil {
			return nil, fmt.Errorf("parse products: %w", err)
		}

		stops = append(stops, domain.NewCoordinate(x, y))
	}

	return stops, nil
}
