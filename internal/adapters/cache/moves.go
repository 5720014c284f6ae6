package cache

import (
	"fmt"
	"pickup-route-service/internal/domain"
	"strings"
)

// encodeMoves stores a move list as one digit per move ("0332").
func encodeMoves(r *domain.Route) string {
	var b strings.Builder
	for _, d := range r.Moves() {
		b.WriteByte(byte('0' + d.Code()))
	}
	return b.String()
}

func decodeMoves(start domain.Coordinate, s string) (*domain.Route, error) {
	route := domain.NewRoute(start)
	for i := 0; i < len(s); i++ {
		d, err := domain.DirectionFromCode(int(s[i]) - '0')
		if err != nil {
			return nil, fmt.Errorf("decode cached moves at %d: %w", i, err)
		}
		route.Add(d)
	}
	return route, nil
}
