package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Address: ":9090"},
		Database: DatabaseConfig{DSN: "postgres://localhost/books"},
		Currency: CurrencyConfig{Default: "EUR"},
		Logging:  LoggingConfig{Level: "debug"},
	}

	path := filepath.Join(t.TempDir(), "stmtgen.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", got.Server.Address)
	assert.Equal(t, "postgres://localhost/books", got.Database.DSN)
	assert.Equal(t, "EUR", got.Currency.Default)
	assert.Equal(t, "debug", got.Logging.Level)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stmtgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  dsn: postgres://x\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "USD", cfg.Currency.Default)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "USD", cfg.Currency.Default)
	assert.Equal(t, "info", cfg.Logging.Level)
}
