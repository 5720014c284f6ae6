package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config collects the settings shared by the planner, server and dbtool binaries.
type Config struct {
	CoordinatesPath string `yaml:"coordinates_path"`
	ProductsPath    string `yaml:"products_path"`
	OrderPath       string `yaml:"order_path"`
	ActionPlanPath  string `yaml:"action_plan_path"`

	SnapshotPath string `yaml:"snapshot_path"`
	SnapshotKey  string `yaml:"snapshot_key"`

	RouteFinder struct {
		URL     string        `yaml:"url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"route_finder"`
	AssemblyWorkers int `yaml:"assembly_workers"`

	DatabaseURL string `yaml:"database_url"`

	Redis struct {
		Addr     string        `yaml:"addr"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		TTL      time.Duration `yaml:"ttl"`
	} `yaml:"redis"`

	Port string `yaml:"port"`
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Default() Config {
	var c Config
	c.CoordinatesPath = "data/coordinates.txt"
	c.ProductsPath = "data/products.txt"
	c.OrderPath = "data/order.txt"
	c.ActionPlanPath = "data/actions.txt"
	c.SnapshotKey = "default"
	c.RouteFinder.Timeout = 10 * time.Second
	c.AssemblyWorkers = 8
	c.Redis.TTL = 24 * time.Hour
	c.Port = "8080"
	return c
}

// Load reads the optional YAML file at path over the defaults and then
// applies environment overrides. An empty path or a missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("load config: read %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &c); err != nil {
				return Config{}, fmt.Errorf("load config: parse %q: %w", path, err)
			}
		}
	}

	if err := c.applyEnv(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return c, nil
}

func (c *Config) applyEnv() error {
	c.CoordinatesPath = Get("COORDINATES_PATH", c.CoordinatesPath)
	c.ProductsPath = Get("PRODUCTS_PATH", c.ProductsPath)
	c.OrderPath = Get("ORDER_PATH", c.OrderPath)
	c.ActionPlanPath = Get("ACTION_PLAN_PATH", c.ActionPlanPath)
	c.SnapshotPath = Get("SNAPSHOT_PATH", c.SnapshotPath)
	c.SnapshotKey = Get("SNAPSHOT_KEY", c.SnapshotKey)
	c.RouteFinder.URL = Get("ROUTE_FINDER_URL", c.RouteFinder.URL)
	c.DatabaseURL = Get("DATABASE_URL", c.DatabaseURL)
	c.Redis.Addr = Get("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = Get("REDIS_PASSWORD", c.Redis.Password)
	c.Port = Get("PORT", c.Port)

	var err error
	if c.RouteFinder.Timeout, err = durationEnv("ROUTE_FINDER_TIMEOUT", c.RouteFinder.Timeout); err != nil {
		return err
	}
	if c.Redis.TTL, err = durationEnv("ROUTE_CACHE_TTL", c.Redis.TTL); err != nil {
		return err
	}
	if c.AssemblyWorkers, err = intEnv("ASSEMBLY_WORKERS", c.AssemblyWorkers); err != nil {
		return err
	}
	if c.Redis.DB, err = intEnv("REDIS_DB", c.Redis.DB); err != nil {
		return err
	}

	return nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, err)
	}
	return n, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, err)
	}
	return d, nil
}
