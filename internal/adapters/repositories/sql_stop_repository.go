package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pickup-route-service/internal/domain"
)

// Postgres-backed implementation of the StopRepository port.
type SQLStopRepository struct{ DB *sql.DB }

func NewSQLStopRepository(db *sql.DB) *SQLStopRepository {
	return &SQLStopRepository{DB: db}
}

// Return all stops ordered by stop index.
func (s *SQLStopRepository) ListStops(ctx context.Context) ([]domain.Coordinate, error) {
	if s.DB == nil {
		return nil, errors.New("sql stop repository: DB is nil")
	}

	query := `
	SELECT
		stop_index,
		x,
		y
	FROM stops
	ORDER BY stop_index;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stops: query stops table: %w", err)
	}
	defer rows.Close()

	stops := make([]domain.Coordinate, 0, 64)
	for rows.Next() {
		var idx, x, y int
		if err := rows.Scan(&idx, &x, &y); err != nil {
			return nil, fmt.Errorf("list stops: scan row: %w", err)
		}
		if idx != len(stops) {
			return nil, fmt.Errorf("list stops: stop indices are not contiguous at %d", idx)
		}
		stops = append(stops, domain.NewCoordinate(x, y))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stops: row iteration: %w", err)
	}

	return stops, nil
}
