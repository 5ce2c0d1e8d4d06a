// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every variable name.
const Prefix = "FACE_METRICS_"

// Config holds the runtime settings.
type Config struct {
	ReferencePath   string   `env:"REFERENCE_PATH" envDefault:"reference.json"`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFile         string   `env:"LOG_FILE"`
	PickRadiusScale float64  `env:"PICK_RADIUS_SCALE" envDefault:"1"`
	ActiveMetrics   []string `env:"ACTIVE_METRICS" envSeparator:","` // Empty means all
	OTelEnabled     bool     `env:"OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint    string   `env:"OTEL_ENDPOINT"`
}

// ParseEnv loads prefixed configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: Prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.PickRadiusScale <= 0 {
		return Config{}, fmt.Errorf("%sPICK_RADIUS_SCALE must be positive, got %v", Prefix, cfg.PickRadiusScale)
	}
	return cfg, nil
}
