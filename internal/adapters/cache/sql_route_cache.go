package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/obs"
	"pickup-route-service/internal/ports"
)

// SQLRouteCache is a Postgres-backed cache of route-finder results,
// keyed by the start/end pair of the request.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Fetch the cached route for one start/end pair.
func (s *SQLRouteCache) GetRoute(
	ctx context.Context,
	spec domain.PathSpecification,
) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "route.cache.sql.GetRoute")(&err)

	if s.DB == nil {
		return nil, errors.New("route cache: db is nil")
	}

	q := `
	SELECT moves
    FROM route_cache
    WHERE start_x = $1 AND start_y = $2
        AND end_x = $3 AND end_y = $4;
	`

	var moves string
	err = s.DB.QueryRowContext(ctx, q, spec.Start.X, spec.Start.Y, spec.End.X, spec.End.Y).Scan(&moves)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	route, err := decodeMoves(spec.Start, moves)
	if err != nil {
		return nil, fmt.Errorf("get route cache %s: %w", spec, err)
	}

	return route, nil
}

// Store one route, replacing any previous entry for the same pair.
func (s *SQLRouteCache) PutRoute(ctx context.Context, spec domain.PathSpecification, route *domain.Route) error {
	return s.PutMany(ctx, map[domain.PathSpecification]*domain.Route{spec: route})
}

// Store many routes in a single transaction.
func (s *SQLRouteCache) PutMany(ctx context.Context, routes map[domain.PathSpecification]*domain.Route) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if len(routes) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert route cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO route_cache (start_x, start_y, end_x, end_y, moves)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (start_x, start_y, end_x, end_y) DO UPDATE
	SET moves = EXCLUDED.moves;
	`)
	if err != nil {
		return fmt.Errorf("insert route cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for spec, r := range routes {
		if r == nil {
			return fmt.Errorf("insert route cache: nil route for %s", spec)
		}
		if r.Start() != spec.Start {
			return fmt.Errorf("insert route cache: route for %s starts at %s", spec, r.Start())
		}

		if _, err := stmt.ExecContext(ctx, spec.Start.X, spec.Start.Y, spec.End.X, spec.End.Y, encodeMoves(r)); err != nil {
			return fmt.Errorf("insert route cache %s: %w", spec, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert route cache commit: %w", err)
	}

	return nil
}
