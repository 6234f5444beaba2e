package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the server configuration, read from LOOTGEN_* variables.
type Config struct {
	HTTPAddr string `env:"LOOTGEN_HTTP_ADDR" envDefault:":8080" validate:"required"`
	// GRPCAddr serves the gRPC health service.
	GRPCAddr string `env:"LOOTGEN_GRPC_ADDR" envDefault:":9090" validate:"required"`

	CatalogPath   string `env:"LOOTGEN_CATALOG_PATH"   envDefault:"data/loot_items.json" validate:"required"`
	MaterialsPath string `env:"LOOTGEN_MATERIALS_PATH" envDefault:"data/materials.json"`

	LogLevel  string `env:"LOOTGEN_LOG_LEVEL"  envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOOTGEN_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Env       string `env:"LOOTGEN_ENV"        envDefault:"dev"`

	// WatchInterval is how often catalog files are polled. Zero disables
	// hot reload.
	WatchInterval   time.Duration `env:"LOOTGEN_WATCH_INTERVAL"   envDefault:"2s"  validate:"gte=0"`
	ShutdownTimeout time.Duration `env:"LOOTGEN_SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	MaxBudget int `env:"LOOTGEN_MAX_BUDGET" envDefault:"100000" validate:"gt=0"`
	MaxTrials int `env:"LOOTGEN_MAX_TRIALS" envDefault:"10000"  validate:"gt=0"`
	CacheSize int `env:"LOOTGEN_CACHE_SIZE" envDefault:"16"     validate:"gt=0"`
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv parses and validates the configuration from the environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
