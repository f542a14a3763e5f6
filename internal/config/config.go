package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level stmtgen.yaml configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Currency CurrencyConfig `yaml:"currency"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// DatabaseConfig points at the Postgres instance holding the books.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// CurrencyConfig controls currency fallback behavior.
type CurrencyConfig struct {
	Default string `yaml:"default"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a stmtgen.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Currency.Default == "" {
		c.Currency.Default = "USD"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
