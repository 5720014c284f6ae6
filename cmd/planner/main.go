package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"pickup-route-service/internal/adapters/files"
	"pickup-route-service/internal/app"
	"pickup-route-service/internal/config"
	"pickup-route-service/internal/domain"
	"syscall"

	"github.com/joho/godotenv"
)

// journeyEndpoint selects the journey start (as -route-from) or end (as -route-to).
const journeyEndpoint = -1

// main is the batch composition root: it reads the coordinate, product and
// order files, assembles (or reloads) the route set and writes the action plan.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	configPath := flag.String("config", config.Get("CONFIG_PATH", "config.yaml"), "optional YAML config file")
	coordinatesPath := flag.String("coordinates", "", "coordinate file (journey start and end)")
	productsPath := flag.String("products", "", "product file (pickup stops)")
	orderPath := flag.String("order", "", "visiting order file")
	outPath := flag.String("out", "", "action plan output file")
	snapshotPath := flag.String("snapshot", "", "directory for route set snapshots")
	routeOut := flag.String("route-out", "", "also write the route between -route-from and -route-to to this file")
	routeFrom := flag.Int("route-from", journeyEndpoint, "stop index the route starts at (-1 = journey start)")
	routeTo := flag.Int("route-to", journeyEndpoint, "stop index the route ends at (-1 = journey end)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	override(&cfg.CoordinatesPath, *coordinatesPath)
	override(&cfg.ProductsPath, *productsPath)
	override(&cfg.OrderPath, *orderPath)
	override(&cfg.ActionPlanPath, *outPath)
	override(&cfg.SnapshotPath, *snapshotPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	spec, err := files.ReadCoordinates(cfg.CoordinatesPath)
	if err != nil {
		fatalRead("coordinate", cfg.CoordinatesPath, err)
	}
	stops, err := files.ReadProducts(cfg.ProductsPath)
	if err != nil {
		fatalRead("product", cfg.ProductsPath, err)
	}
	order, err := files.ReadOrder(cfg.OrderPath)
	if err != nil {
		fatalRead("order", cfg.OrderPath, err)
	}

	deps, err := app.Wire(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer deps.Close()

	rs, err := deps.Planner(cfg).Prepare(ctx, stops, spec)
	if err != nil {
		log.Fatalf("prepare route set: %v", err)
	}

	if err := files.WriteActionPlan(cfg.ActionPlanPath, rs, order); err != nil {
		log.Fatal(err)
	}
	log.Printf("action plan written path=%s stops=%d order_len=%d", cfg.ActionPlanPath, rs.Len(), len(order))

	if *routeOut != "" {
		route, err := selectRoute(rs, *routeFrom, *routeTo)
		if err != nil {
			log.Fatal(err)
		}
		if err := files.WriteRoute(*routeOut, route); err != nil {
			log.Fatal(err)
		}
		log.Printf("route written path=%s moves=%d", *routeOut, route.Size())
	}
}

func override(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}

func fatalRead(kind, path string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error reading %s file %s", kind, path)
	}
	log.Fatalf("Error reading %s file %s: %v", kind, path, err)
}

// selectRoute picks one route out of an assembled route set. from may be
// journeyEndpoint for the journey start, to may be journeyEndpoint for the
// journey end; the journey start to end route is not part of the set.
func selectRoute(rs *domain.RouteSet, from, to int) (*domain.Route, error) {
	if !rs.Assembled() {
		return nil, domain.ErrNotAssembled
	}

	n := rs.Len()
	valid := func(i int) bool { return i == journeyEndpoint || (i >= 0 && i < n) }
	if !valid(from) || !valid(to) {
		return nil, fmt.Errorf("select route %d -> %d of %d stops: %w", from, to, n, domain.ErrStopIndexOutOfRange)
	}

	switch {
	case from == journeyEndpoint && to == journeyEndpoint:
		return nil, errors.New("select route: journey start to end is not part of the route set")
	case from == journeyEndpoint:
		return rs.StartToStop[to], nil
	case to == journeyEndpoint:
		return rs.StopToEnd[from], nil
	default:
		return rs.StopToStop[from][to], nil
	}
}
