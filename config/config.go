package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"gopkg.in/yaml.v3"
)

// Config holds everything the dashboard needs to run.
type Config struct {
	DBPath       string `yaml:"db_path" env:"FOLIO_DB"`
	QuoteBaseURL string `yaml:"quote_base_url" env:"FOLIO_QUOTE_URL"`
	QuoteTimeout string `yaml:"quote_timeout" env:"FOLIO_QUOTE_TIMEOUT"` // e.g. "10s"
	Refresh      string `yaml:"refresh" env:"FOLIO_REFRESH"`             // e.g. "30s"
	Window       string `yaml:"window" env:"FOLIO_WINDOW"`               // 1h|12h|1d|1w|1m|6m|1y
	LogLevel     string `yaml:"log_level" env:"FOLIO_LOG_LEVEL"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		DBPath:       "./portfolio.db",
		QuoteBaseURL: "",
		QuoteTimeout: "10s",
		Refresh:      "30s",
		Window:       "1d",
		LogLevel:     "info",
	}
}

// LoadFromFile loads configuration from a YAML file, starting from the
// defaults so a partial file is fine.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays FOLIO_* environment variables onto c.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// RefreshInterval parses the refresh period.
func (c *Config) RefreshInterval() (time.Duration, error) {
	return time.ParseDuration(c.Refresh)
}

// QuoteTimeoutDuration parses the per-request quote timeout.
func (c *Config) QuoteTimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(c.QuoteTimeout)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if d, err := c.RefreshInterval(); err != nil || d <= 0 {
		return fmt.Errorf("refresh must be a positive duration, got %q", c.Refresh)
	}
	if d, err := c.QuoteTimeoutDuration(); err != nil || d <= 0 {
		return fmt.Errorf("quote_timeout must be a positive duration, got %q", c.QuoteTimeout)
	}
	switch c.Window {
	case "1h", "12h", "1d", "1w", "1m", "6m", "1y":
	default:
		return fmt.Errorf("unknown window: %s", c.Window)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug|info|warn|error, got %q", c.LogLevel)
	}
	return nil
}
