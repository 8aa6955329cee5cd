// Package config reads service settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	MetricsToken   string `envconfig:"METRICS_TOKEN"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// WriteRateLimit caps POST/PUT/DELETE per client IP per WriteRateWindow; 0 disables.
	WriteRateLimit  int           `envconfig:"WRITE_RATE_LIMIT" default:"0"`
	WriteRateWindow time.Duration `envconfig:"WRITE_RATE_WINDOW" default:"1m"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Load applies files (default ".env") without overriding variables already
// set, then decodes the environment. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	if cfg.WriteRateLimit > 0 && cfg.WriteRateWindow <= 0 {
		return Config{}, errors.New("WRITE_RATE_WINDOW must be positive when WRITE_RATE_LIMIT is set")
	}
	return cfg, nil
}
