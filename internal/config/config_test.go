package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 9090

[database]
user = "salon"
password = "secret"
dbname = "salon_availability"

[availability]
step_interval_minutes = 15
default_buffer_minutes = 10

[rate_limit]
enabled = false
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.Equal(t, 15, cfg.Availability.StepIntervalMinutes)
		assert.Equal(t, 10, cfg.Availability.DefaultBufferMinutes)
		assert.False(t, cfg.RateLimit.Enabled)

		// Незаполненные секции получают значения по умолчанию
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
	})

	t.Run("missing required database fields", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 8080
`)

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("step interval out of range", func(t *testing.T) {
		path := writeConfig(t, `
[database]
user = "salon"
dbname = "salon_availability"

[availability]
step_interval_minutes = 1
`)

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "salon",
		Password: "secret",
		DBName:   "availability",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5433 user=salon password=secret dbname=availability sslmode=disable",
		d.DSN(),
	)
}
