package restkit

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment-derived settings for an HTTPClient.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// ConfigFromEnv loads client configuration from the environment,
// reading a .env file first if one is present. RESTKIT_BASE_URL is
// required; RESTKIT_TIMEOUT is an optional Go duration string
// defaulting to 30s.
func ConfigFromEnv() (*Config, error) {
	godotenv.Load()

	base := os.Getenv("RESTKIT_BASE_URL")
	if base == "" {
		return nil, fmt.Errorf("required environment variable RESTKIT_BASE_URL is not set")
	}

	timeout, err := time.ParseDuration(getEnvWithDefault("RESTKIT_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESTKIT_TIMEOUT: %w", err)
	}

	return &Config{
		BaseURL: base,
		Timeout: timeout,
	}, nil
}

// NewHTTPClientFromEnv builds an HTTPClient from ConfigFromEnv.
func NewHTTPClientFromEnv() (*HTTPClient, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewHTTPClient(cfg.BaseURL).WithTimeout(cfg.Timeout), nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}
