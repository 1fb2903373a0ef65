package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, "recipes.json", cfg.DataFile)
	assert.Equal(t, "recipes.json", cfg.Location())
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "recipes.db", cfg.DatabaseDSN())
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RECIPEBOOK_STORAGE_BACKEND", "sql")
	t.Setenv("RECIPEBOOK_STORAGE_BOOK", "family")
	t.Setenv("RECIPEBOOK_DB_DRIVER", "postgres")
	t.Setenv("RECIPEBOOK_DB_HOST", "db.internal")
	t.Setenv("RECIPEBOOK_DB_NAME", "recipes")
	t.Setenv("RECIPEBOOK_DB_PASSWORD", "secret")
	t.Setenv("RECIPEBOOK_SERVER_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, BackendSQL, cfg.StorageBackend)
	assert.Equal(t, "family", cfg.Location())
	assert.Equal(t, "host=db.internal port=5432 user=postgres password=secret dbname=recipes sslmode=disable", cfg.DatabaseDSN())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "recipebook.yaml")
	content := "storage:\n  backend: redis\n  book: weeknight\nredis:\n  url: redis://cache:6379/1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, "weeknight", cfg.Location())
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RECIPEBOOK_STORAGE_FILE=catalog.json\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("RECIPEBOOK_STORAGE_FILE") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "catalog.json", cfg.DataFile)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort:      "8080",
			StorageBackend:  BackendFile,
			DataFile:        "recipes.json",
			RateLimit:       10,
			RateLimitWindow: time.Minute,
		}
	}

	assert.NoError(t, ValidateConfig(valid()))

	cfg := valid()
	cfg.StorageBackend = "ftp"
	assert.Error(t, ValidateConfig(cfg))

	cfg = valid()
	cfg.StorageBackend = BackendS3
	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3.bucket")

	cfg = valid()
	cfg.StorageBackend = BackendSQL
	cfg.DBDriver = "oracle"
	assert.Error(t, ValidateConfig(cfg))

	cfg = valid()
	cfg.ServerPort = "http"
	cfg.DataFile = " "
	var errs ValidationErrors
	require.ErrorAs(t, ValidateConfig(cfg), &errs)
	assert.Len(t, errs, 2)

	cfg = valid()
	cfg.RateLimitWindow = 0
	assert.Error(t, ValidateConfig(cfg))
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("RECIPEBOOK_ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("RECIPEBOOK_ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
