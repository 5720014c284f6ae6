// Package app builds the adapters shared by the planner and server binaries
// from a loaded Config.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"pickup-route-service/internal/adapters/cache"
	"pickup-route-service/internal/adapters/routefinder"
	"pickup-route-service/internal/adapters/snapshot"
	"pickup-route-service/internal/config"
	"pickup-route-service/internal/platform/db"
	"pickup-route-service/internal/ports"
	"pickup-route-service/internal/services"
	"strings"
)

// Deps holds the wired adapters. Close releases the connections it opened.
type Deps struct {
	DB        *sql.DB // nil without DATABASE_URL
	Finder    ports.RouteFinder
	Snapshots ports.SnapshotStore

	closers []func() error
}

// Wire connects to Postgres and Redis when configured and builds the route
// finder chain and snapshot store.
//
// Route cache: Redis when REDIS_ADDR is set, else Postgres when DATABASE_URL
// is set, else none. Snapshot store: files under SNAPSHOT_PATH when set, else
// Postgres, else none. Without ROUTE_FINDER_URL there is no finder and only a
// matching snapshot can satisfy a plan.
func Wire(ctx context.Context, cfg config.Config) (*Deps, error) {
	d := &Deps{}

	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		handle, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("wire: %w", err)
		}
		d.DB = handle
		d.closers = append(d.closers, handle.Close)
	}

	var routeCache ports.RouteCache
	switch {
	case strings.TrimSpace(cfg.Redis.Addr) != "":
		client, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("wire: %w", err)
		}
		d.closers = append(d.closers, client.Close)
		routeCache = cache.NewRedisRouteCache(client, cfg.Redis.TTL)
	case d.DB != nil:
		routeCache = cache.NewSQLRouteCache(d.DB)
	}

	if strings.TrimSpace(cfg.RouteFinder.URL) != "" {
		httpFinder, err := routefinder.NewHTTPRouteFinder(cfg.RouteFinder.URL, cfg.RouteFinder.Timeout)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("wire: %w", err)
		}
		d.Finder = httpFinder
		if routeCache != nil {
			d.Finder = routefinder.NewCachingRouteFinder(httpFinder, routeCache)
		}
	}

	switch {
	case strings.TrimSpace(cfg.SnapshotPath) != "":
		d.Snapshots = snapshot.NewFileStore(cfg.SnapshotPath)
	case d.DB != nil:
		d.Snapshots = snapshot.NewSQLStore(d.DB)
	}

	return d, nil
}

// Planner returns a planner using the wired finder and snapshot store.
func (d *Deps) Planner(cfg config.Config) *services.Planner {
	workers := cfg.AssemblyWorkers
	if workers < 1 {
		workers = services.DefaultWorkers
	}
	return &services.Planner{
		Finder:      d.Finder,
		Snapshots:   d.Snapshots,
		SnapshotKey: cfg.SnapshotKey,
		Workers:     workers,
	}
}

func (d *Deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			log.Printf("close: %v", err)
		}
	}
	d.closers = nil
}
