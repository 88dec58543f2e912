// Package config loads configuration from environment variables and .env files.
package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all settings for the search service.
type Config struct {
	// Server
	HTTPPort       int      `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Data
	DataPath string `env:"DATA_PATH" envDefault:"data/sample_internships.csv"`

	// Snapshot store
	SnapshotDir      string `env:"SNAPSHOT_DIR" envDefault:"data/snapshots"`
	SnapshotInMemory bool   `env:"SNAPSHOT_IN_MEMORY" envDefault:"false"`

	// Search
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	DefaultRadiusKm float64       `env:"DEFAULT_RADIUS_KM" envDefault:"100"`
	MaxFeatures     int           `env:"MAX_FEATURES" envDefault:"3000"`
}

// Load reads the optional .env file, then the environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment still applies
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
