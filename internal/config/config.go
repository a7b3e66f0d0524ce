package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	defaultPort            = 3000
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds all configuration for the demo API service
type Config struct {
	// Server configuration
	Port     int    `env:"PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Deployment environment name ("development", "production", ...).
	// Documented for parity with the deployment manifests; the service
	// behaves identically in every environment.
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// Timeouts
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables.
//
// A PORT value that does not parse as an integer, or falls outside the
// valid port range, degrades to the default instead of failing startup.
// Parse failures only affect the offending variable; values that parsed
// cleanly are kept. Degradations are reported on stderr since the logger
// is not configured yet.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		// env leaves fields whose variables failed to parse at their
		// zero values while still populating the rest.
		fmt.Fprintf(os.Stderr, "Ignoring unusable environment values: %v\n", err)
		if cfg.ShutdownTimeout <= 0 {
			cfg.ShutdownTimeout = defaultShutdownTimeout
		}
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		fmt.Fprintf(os.Stderr, "Invalid port %d, using default %d\n", cfg.Port, defaultPort)
		cfg.Port = defaultPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
