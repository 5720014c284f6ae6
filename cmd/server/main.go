package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pickup-route-service/internal/adapters/files"
	"pickup-route-service/internal/adapters/repositories"
	"pickup-route-service/internal/api"
	"pickup-route-service/internal/app"
	"pickup-route-service/internal/config"
	"pickup-route-service/internal/ports"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, HTTP route finder) behind ports,
// prepares the route set once and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	spec, err := files.ReadCoordinates(cfg.CoordinatesPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Error reading coordinate file %s", cfg.CoordinatesPath)
		}
		log.Fatal(err)
	}

	deps, err := app.Wire(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer deps.Close()

	// Stops come from Postgres once dbtool has seeded it, otherwise straight
	// from the product file.
	var repo ports.StopRepository = repositories.NewProductFileStopRepository(cfg.ProductsPath)
	if deps.DB != nil {
		repo = repositories.NewSQLStopRepository(deps.DB)
	}

	stops, err := repo.ListStops(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Error reading product file %s", cfg.ProductsPath)
		}
		log.Fatal(err)
	}

	rs, err := deps.Planner(cfg).Prepare(ctx, stops, spec)
	if err != nil {
		log.Fatalf("prepare route set: %v", err)
	}

	router := api.NewRouter(rs)

	log.Printf("Server listening addr=:%s stops=%d", cfg.Port, rs.Len())
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
