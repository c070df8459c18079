package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, warnings := Load()

	assert.Empty(t, warnings)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./freight.db", cfg.DBPath)
	assert.Equal(t, BackendSQLite, cfg.HistoryBackend)
	assert.Equal(t, 50, cfg.HistoryCapacity)
	assert.Equal(t, time.Hour, cfg.RateRefreshInterval)
	assert.Equal(t, 10*time.Second, cfg.RateFetchTimeout)
	assert.Equal(t, 3, cfg.RateFetchRetries)
	assert.Equal(t, "120-M", cfg.RateLimit)
	assert.Equal(t, "fr", cfg.DefaultLang)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("HISTORY_BACKEND", "FILE")
	t.Setenv("HISTORY_CAPACITY", "10")
	t.Setenv("RATE_REFRESH_INTERVAL", "0s")
	t.Setenv("RATE_FETCH_RETRIES", "0")
	t.Setenv("DEFAULT_LANG", "es")

	cfg, warnings := Load()

	assert.Empty(t, warnings)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendFile, cfg.HistoryBackend)
	assert.Equal(t, 10, cfg.HistoryCapacity)
	assert.Zero(t, cfg.RateRefreshInterval)
	assert.Zero(t, cfg.RateFetchRetries)
	assert.Equal(t, "es", cfg.DefaultLang)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HISTORY_BACKEND", "redis")
	t.Setenv("HISTORY_CAPACITY", "-4")
	t.Setenv("RATE_FETCH_TIMEOUT", "soon")
	t.Setenv("DEFAULT_LANG", "de")

	cfg, warnings := Load()

	assert.Len(t, warnings, 4)
	assert.Equal(t, BackendSQLite, cfg.HistoryBackend)
	assert.Equal(t, 50, cfg.HistoryCapacity)
	assert.Equal(t, 10*time.Second, cfg.RateFetchTimeout)
	assert.Equal(t, "fr", cfg.DefaultLang)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\n"), 0o600))

	prev, had := os.LookupEnv("PORT")
	require.NoError(t, os.Unsetenv("PORT"))
	t.Cleanup(func() {
		if had {
			os.Setenv("PORT", prev)
		} else {
			os.Unsetenv("PORT")
		}
	})

	cfg, _ := Load()

	assert.Equal(t, "7070", cfg.Port)
}
