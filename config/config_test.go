package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"ENV", "CI", "CONFIG_FILE", "SERVER_PORT", "STORE_DRIVER", "DEFAULT_KITCHEN",
		"DB_HOST", "DB_USER", "DB_PASSWORD", "REDIS_URL", "JWT_SECRET", "QUOTA_BYTES",
		"RATE_LIMIT_WINDOW", "RATE_LIMIT_LIMIT", "ALLOWED_ORIGINS",
		"KITCHEN_RATE_LIMIT", "MAX_KITCHENS",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, "default", cfg.DefaultKitchen)
	assert.Equal(t, 5*1024*1024, cfg.QuotaBytes)
	assert.Equal(t, time.Hour, cfg.RateLimitWindow)
	assert.Equal(t, 10, cfg.KitchenRateLimit)
	assert.Equal(t, 1000, cfg.MaxKitchens)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("QUOTA_BYTES", "1024")
	t.Setenv("RATE_LIMIT_WINDOW", "15m")
	t.Setenv("MAX_KITCHENS", "50")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, DriverRedis, cfg.StoreDriver)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, 1024, cfg.QuotaBytes)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 50, cfg.MaxKitchens)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoadConfigFileThenEnvironment(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_port: "7070"
store_driver: sqlite
sqlite_path: /tmp/kitchen.db
default_kitchen: house
rate_limit_window: 30m
`), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVER_PORT", "7171")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7171", cfg.ServerPort, "environment overrides the file")
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "/tmp/kitchen.db", cfg.SQLitePath)
	assert.Equal(t, "house", cfg.DefaultKitchen)
	assert.Equal(t, 30*time.Minute, cfg.RateLimitWindow)
}

func TestLoadConfigReadsSecrets(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-secret\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.JWTSecret)
}

func TestValidateConfig(t *testing.T) {
	isolateEnv(t)

	cfg := Defaults()
	cfg.ServerPort = "not-a-port"
	cfg.StoreDriver = "mongo"
	cfg.QuotaBytes = 0
	cfg.MaxKitchens = 0

	err := ValidateConfig(cfg)
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"SERVER_PORT", "QUOTA_BYTES", "MAX_KITCHENS", "STORE_DRIVER"}, fields)
}

func TestValidateConfigProductionSecret(t *testing.T) {
	isolateEnv(t)
	t.Setenv("ENV", "production")

	err := ValidateConfig(Defaults())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidateConfigPostgresRequirements(t *testing.T) {
	isolateEnv(t)

	cfg := Defaults()
	cfg.StoreDriver = DriverPostgres
	cfg.DBHost = ""
	cfg.DBName = ""

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "DB_NAME")
}
