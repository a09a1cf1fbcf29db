package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"medication-cart/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom("", env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "student", cfg.DefaultStudent)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.DBDSN)
	assert.Empty(t, cfg.CatalogFile)
	assert.Equal(t, logger.Info, cfg.LoggerOptions().Level)
}

func TestLoadFrom_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
catalog_file: /data/catalog.yaml
session_ttl: 30m
log:
  level: debug
  format: json
`), 0o600))

	cfg, err := LoadFrom(path, env(map[string]string{
		"PORT":      "9100",
		"LOG_LEVEL": "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Addr(), "env wins over file")
	assert.Equal(t, "/data/catalog.yaml", cfg.CatalogFile)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)

	opts := cfg.LoggerOptions()
	assert.Equal(t, logger.Warn, opts.Level)
	assert.Equal(t, logger.FormatJSON, opts.Format)
}

func TestLoadFrom_Errors(t *testing.T) {
	_, err := LoadFrom("", env(map[string]string{"SESSION_TTL": "forever"}))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadFrom("", env(map[string]string{"SESSION_TTL": "-5m"}))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [\n"), 0o600))
	_, err = LoadFrom(path, env(nil))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"), env(nil))
	assert.Error(t, err)
}
