package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range []string{"ENV", "ERROR_LOG", "PG_HOST", "PG_USER", "PG_PASS", "PG_DB", "PG_SSLMODE", "PORT", "PG_PORT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_layering(t *testing.T) {
	clearEnv(t)

	yamlPath := writeFile(t, "config.yaml", `
port: 8080
environment: staging
db:
  host: db.internal
  name: catalog
  max_idle_time: 5m
limiter:
  enabled: false
`)
	envPath := writeFile(t, "test.env", "PG_HOST=env-host\nPG_PASS=secret\n")
	t.Setenv("PORT", "9090")

	cfg, err := Load(yamlPath, envPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port, "environment beats yaml")
	assert.Equal(t, "staging", cfg.Environment, "yaml beats defaults")
	assert.Equal(t, "env-host", cfg.DB.Host, "env file beats yaml")
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.Equal(t, "catalog", cfg.DB.Name)
	assert.Equal(t, 5*time.Minute, cfg.DB.MaxIdleTime)
	assert.False(t, cfg.Limiter.Enabled)
	assert.Equal(t, 4, cfg.Limiter.Burst, "unset yaml keys keep defaults")
}

func TestLoad_errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config file")

	_, err = Load(writeFile(t, "bad.yaml", "port: [1, 2"))
	assert.ErrorContains(t, err, "parse config file")

	t.Setenv("PG_PORT", "five")
	_, err = Load("", filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "parse PG_PORT")
}

func TestDSN(t *testing.T) {
	t.Parallel()

	cfg := DBConfig{Host: "localhost", Port: 5432, User: "library", Name: "library"}
	assert.Equal(t, "host=localhost port=5432 user=library dbname=library sslmode=disable", cfg.DSN())

	cfg.Password = "pw"
	cfg.SSLMode = "require"
	assert.Equal(t, "host=localhost port=5432 user=library dbname=library sslmode=require password=pw", cfg.DSN())
}
