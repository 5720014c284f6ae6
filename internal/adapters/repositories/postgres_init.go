package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pickup-route-service/internal/domain"
)

// Initialize the Postgres schema used by the stop repository, the route
// cache and the snapshot store.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS stops (
		stop_index INTEGER PRIMARY KEY,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
        start_x INTEGER NOT NULL,
        start_y INTEGER NOT NULL,
        end_x INTEGER NOT NULL,
        end_y INTEGER NOT NULL,
        moves TEXT NOT NULL,
        PRIMARY KEY (start_x, start_y, end_x, end_y)
    );
	`

	createSnapshotsQuery := `
	CREATE TABLE IF NOT EXISTS route_set_snapshots (
        key TEXT PRIMARY KEY,
        version INTEGER NOT NULL,
        payload JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_cache_end_start
    ON route_cache(end_x, end_y, start_x, start_y);
	`

	statements := []string{
		createStopsQuery,
		createRouteCacheQuery,
		createSnapshotsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the stored stops with the given list; the slice position becomes
// the stop index.
func SeedStops(ctx context.Context, db *sql.DB, stops []domain.Coordinate) error {
	if db == nil {
		return errors.New("seed stops: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed stops: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM stops;`); err != nil {
		return fmt.Errorf("seed stops: clear stops: %w", err)
	}

	query := `
	INSERT INTO stops (
		stop_index,
		x,
		y
	)
	VALUES ($1, $2, $3);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed stops: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range stops {
		if _, err := stmt.ExecContext(ctx, i, c.X, c.Y); err != nil {
			return fmt.Errorf("seed stops: insert stop_index=%d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stops: commit tx: %w", err)
	}

	return nil
}
