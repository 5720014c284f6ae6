package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/obs"
	"pickup-route-service/internal/ports"
)

// SQLStore keeps snapshots in the route_set_snapshots Postgres table.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func (s *SQLStore) Load(ctx context.Context, key string) (_ *domain.RouteSet, err error) {
	defer obs.Time(ctx, "snapshot.sql.Load")(&err)

	if s.DB == nil {
		return nil, errors.New("snapshot store: db is nil")
	}

	q := `
	SELECT version, payload
	FROM route_set_snapshots
	WHERE key = $1;
	`

	var (
		version int
		payload []byte
	)
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&version, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load snapshot %q: %w", key, ports.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: query route_set_snapshots: %w", key, err)
	}
	if version != Version {
		return nil, fmt.Errorf("load snapshot %q: %w: %d", key, ErrUnsupportedSnapshotVersion, version)
	}

	rs, err := Unmarshal(payload)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", key, err)
	}
	return rs, nil
}

func (s *SQLStore) Save(ctx context.Context, key string, rs *domain.RouteSet) (err error) {
	defer obs.Time(ctx, "snapshot.sql.Save")(&err)

	if s.DB == nil {
		return errors.New("snapshot store: db is nil")
	}

	payload, err := Marshal(rs)
	if err != nil {
		return err
	}

	q := `
	INSERT INTO route_set_snapshots (key, version, payload, updated_at)
	VALUES ($1, $2, $3, now())
	ON CONFLICT (key) DO UPDATE
	SET version = EXCLUDED.version,
		payload = EXCLUDED.payload,
		updated_at = EXCLUDED.updated_at;
	`
	if _, err := s.DB.ExecContext(ctx, q, key, Version, payload); err != nil {
		return fmt.Errorf("save snapshot %q: %w", key, err)
	}

	return nil
}
