package files

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// ReadOrder loads a visiting order produced by an external solver.
func ReadOrder(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read order %q: %w", path, err)
	}
	defer f.Close()

	order, err := ParseOrder(f)
	if err != nil {
		return nil, fmt.Errorf("read order %q: %w", path, err)
	}

	return order, nil
}

// ParseOrder reads 0-based stop indices separated by commas, semicolons or
// whitespace. The result is not checked to be a permutation.
func ParseOrder(r io.Reader) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse order: %w", err)
	}

	fields := strings.FieldsFunc(string(data), func(c rune) bool {
		return c == ',' || c == ';' || unicode.IsSpace(c)
	})

	order := make([]int, 0, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse order: entry %d: %w: %q is not an integer", i+1, ErrMalformedInput, f)
		}
		order = append(order, n)
	}

	return order, nil
}
