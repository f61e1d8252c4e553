package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds runtime configuration for the long-running commands
// (serve). Plain verification reads no environment.
type Config struct {
	// Server
	Port int
	Env  string

	// Largest source accepted over HTTP, in bytes
	MaxSourceBytes int64

	// Request timeout in seconds
	RequestTimeout int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnvInt("SJAVAC_PORT", 8080),
		Env:            getEnv("SJAVAC_ENV", "development"),
		MaxSourceBytes: int64(getEnvInt("SJAVAC_MAX_SOURCE_BYTES", 1<<20)),
		RequestTimeout: getEnvInt("SJAVAC_REQUEST_TIMEOUT", 30),
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("SJAVAC_PORT out of range: %d", c.Port)
	}
	if c.MaxSourceBytes <= 0 {
		return fmt.Errorf("SJAVAC_MAX_SOURCE_BYTES must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("SJAVAC_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
