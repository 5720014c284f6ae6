// Package files reads and writes the plain-text formats exchanged with the
// surrounding tooling: coordinate files, product files, visiting orders,
// route files and action-plan files.
//
// Loaders never terminate the process. A missing input file surfaces as an
// error satisfying errors.Is(err, fs.ErrNotExist); binaries decide whether
// that is fatal.
package files

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var ErrMalformedInput = errors.New("malformed input")

var (
	coordinateSep = regexp.MustCompile(`[,;]\s*`)
	productSep    = regexp.MustCompile(`[:,;]\s*`)
)

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// parseInt converts one token, reporting the 1-based line on failure.
func parseInt(tok string, line int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return 0, fmt.Errorf("line %d: %w: %q is not an integer", line, ErrMalformedInput, tok)
	}
	return n, nil
}
