package files

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"pickup-route-service/internal/domain"
	"strings"
)

// WriteRoute writes route to path in the route file format.
func WriteRoute(path string, route *domain.Route) error {
	var buf bytes.Buffer
	if _, err := route.WriteTo(&buf); err != nil {
		return fmt.Errorf("write route %q: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write route %q: %w", path, err)
	}
	return nil
}

func ReadRoute(path string) (*domain.Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read route %q: %w", path, err)
	}
	defer f.Close()

	route, err := ParseRoute(f)
	if err != nil {
		return nil, fmt.Errorf("read route %q: %w", path, err)
	}

	return route, nil
}

// ParseRoute reads the format produced by Route.String:
// "<count>;", "<x>, <y>;", then one "<code>;" line per move.
func ParseRoute(r io.Reader) (*domain.Route, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("parse route: %w", err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("parse route: %w: want at least 2 lines, got %d", ErrMalformedInput, len(lines))
	}

	count, err := parseInt(trimTerminator(lines[0]), 1)
	if err != nil {
		return nil, fmt.Errorf("parse route: move count: %w", err)
	}
	if count < 0 || len(lines) < count+2 {
		return nil, fmt.Errorf("parse route: %w: move count %d does not match %d move lines", ErrMalformedInput, count, len(lines)-2)
	}

	start, err := parseCoordinateLine(trimTerminator(lines[1]), 2)
	if err != nil {
		return nil, fmt.Errorf("parse route: start: %w", err)
	}

	route := domain.NewRoute(start)
	for i := 2; i < count+2; i++ {
		code, err := parseInt(trimTerminator(lines[i]), i+1)
		if err != nil {
			return nil, fmt.Errorf("parse route: %w", err)
		}
		d, err := domain.DirectionFromCode(code)
		if err != nil {
			return nil, fmt.Errorf("parse route: line %d: %w", i+1, err)
		}
		route.Add(d)
	}

	return route, nil
}

func trimTerminator(line string) string {
	return strings.TrimSuffix(strings.TrimSpace(line), ";")
}
