package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: test-secret
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "unisync", cfg.Database.DBName)
	assert.Equal(t, "Fall 2025", cfg.Planner.DefaultSemester)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, "* * * * *", cfg.Notifications.SweepSchedule)
	assert.Equal(t, 720*time.Hour, cfg.TokenExpiration())
}

func TestLoadConfigFileOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: test-secret
  token_expiration: 24h
planner:
  default_semester: Spring 2026
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "Spring 2026", cfg.Planner.DefaultSemester)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiration())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: file-secret
`)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("NOTIFICATIONS_ENABLED", "false")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.False(t, cfg.Notifications.Enabled)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "8080"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadTokenExpiration(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: test-secret
  token_expiration: one month
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: test-secret
database:
  user: app
  password: pw
  host: db.internal
  port: "5433"
  dbname: planner
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:pw@db.internal:5433/planner?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
