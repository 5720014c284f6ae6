package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"io/fs"
	"log"
	"pickup-route-service/internal/adapters/files"
	"pickup-route-service/internal/adapters/repositories"
	"pickup-route-service/internal/config"
	"pickup-route-service/internal/platform/db"
	"strings"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	productsPath := flag.String("products", cfg.ProductsPath, "product file to seed stops from")
	schemaOnly := flag.Bool("schema-only", false, "create the schema without seeding stops")
	flag.Parse()

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	db, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	initAndSeed(ctx, db, *productsPath, *schemaOnly)
}

func initAndSeed(ctx context.Context, db *sql.DB, productsPath string, schemaOnly bool) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if schemaOnly {
		return
	}

	stops, err := files.ReadProducts(productsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Error reading product file %s", productsPath)
		}
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("Seeding database...")
	if err := repositories.SeedStops(ctx, db, stops); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete. stops=%d", len(stops))
}
