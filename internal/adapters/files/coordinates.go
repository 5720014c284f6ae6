package files

import (
	"fmt"
	"io"
	"os"
	"pickup-route-service/internal/domain"
)

// ReadCoordinates loads the journey start and end from a coordinate file.
func ReadCoordinates(path string) (domain.PathSpecification, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.PathSpecification{}, fmt.Errorf("read coordinates %q: %w", path, err)
	}
	defer f.Close()

	spec, err := ParseCoordinates(f)
	if err != nil {
		return domain.PathSpecification{}, fmt.Errorf("read coordinates %q: %w", path, err)
	}

	return spec, nil
}

// ParseCoordinates reads two lines of "x,y" (or "x;y", optional whitespace
// after the separator): the start, then the end.
func ParseCoordinates(r io.Reader) (domain.PathSpecification, error) {
	lines, err := readLines(r)
	if err != nil {
		return domain.PathSpecification{}, fmt.Errorf("parse coordinates: %w", err)
	}
	if len(lines) < 2 {
		return domain.PathSpecification{}, fmt.Errorf("parse coordinates: %w: want 2 lines, got %d", ErrMalformedInput, len(lines))
	}

	start, err := parseCoordinateLine(lines[0], 1)
	if err != nil {
		return domain.PathSpecification{}, fmt.Errorf("parse coordinates: %w", err)
	}

	end, err := parseCoordinateLine(lines[1], 2)
	if err != nil {
		return domain.PathSpecification{}, fmt.Errorf("parse coordinates: %w", err)
	}

	return domain.NewPathSpecification(start, end), nil
}

func parseCoordinateLine(line string, lineNo int) (domain.Coordinate, error) {
	parts := coordinateSep.Split(line, -1)
	if len(parts) < 2 {
		return domain.Coordinate{}, fmt.Errorf("line %d: %w: want \"x,y\", got %q", lineNo, ErrMalformedInput, line)
	}

	x, err := parseInt(parts[0], lineNo)
	if err != nil {
		return domain.Coordinate{}, err
	}
	y, err := parseInt(parts[1], lineNo)
	if err != nil {
		return domain.Coordinate{}, err
	}

	return domain.NewCoordinate(x, y), nil
}
