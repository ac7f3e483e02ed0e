// Package config loads server configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Storage backend selectors.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config holds the server configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `env:"PORT" envDefault:"9999"`
	// DatabasePath is the flat JSON document file backing the file storage
	// backend (and reference data in both backends).
	DatabasePath string `env:"DATABASE_PATH" envDefault:"data/db.json"`
	// StorageBackend selects where campaign state lives: file or redis.
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"file"`
	// RedisAddr is the Redis endpoint used when StorageBackend is redis.
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.StorageBackend != BackendFile && cfg.StorageBackend != BackendRedis {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	return cfg, nil
}
