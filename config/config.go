package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store drivers understood by database.Open.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const defaultJWTSecret = "ghibli-kitchen-dev-secret"

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort     string   `yaml:"server_port"`
	ServerHost     string   `yaml:"server_host"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Storage configuration
	StoreDriver    string `yaml:"store_driver"`
	DefaultKitchen string `yaml:"default_kitchen"`
	QuotaBytes     int    `yaml:"quota_bytes"`

	// Database configuration
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"-"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_ssl_mode"`
	SQLitePath string `yaml:"sqlite_path"`

	// Redis configuration
	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"-"`
	RedisDB       int    `yaml:"redis_db"`
	RedisURL      string `yaml:"redis_url"`

	// Rate limiting of recipe mutations (requires Redis)
	RateLimitWindow time.Duration `yaml:"rate_limit_window"`
	RateLimitLimit  int           `yaml:"rate_limit_limit"`
	// Kitchens one client address may create per window
	KitchenRateLimit int `yaml:"kitchen_rate_limit"`

	// Kitchens held in memory; the least recently used are reloaded on demand
	MaxKitchens int `yaml:"max_kitchens"`

	// JWT configuration
	JWTSecret string `yaml:"-"`

	// S3 offload of uploaded images; disabled when the bucket is empty
	S3Bucket string `yaml:"s3_bucket"`
	S3Region string `yaml:"s3_region"`
}

// Defaults returns a configuration that runs a single in-memory kitchen.
func Defaults() *Config {
	return &Config{
		ServerPort:       "8080",
		ServerHost:       "0.0.0.0",
		AllowedOrigins:   []string{"http://localhost:5173"},
		StoreDriver:      DriverMemory,
		DefaultKitchen:   "default",
		QuotaBytes:       5 * 1024 * 1024,
		DBHost:           "localhost",
		DBPort:           "5432",
		DBUser:           "postgres",
		DBName:           "ghibli_kitchen",
		DBSSLMode:        "disable",
		SQLitePath:       "ghibli-kitchen.db",
		RedisHost:        "localhost",
		RedisPort:        "6379",
		RateLimitWindow:  time.Hour,
		RateLimitLimit:   60,
		KitchenRateLimit: 10,
		MaxKitchens:      1000,
		JWTSecret:        defaultJWTSecret,
	}
}

// LoadConfig builds the configuration from, in increasing priority: defaults,
// the YAML file named by CONFIG_FILE, environment variables, and Docker
// secrets for sensitive values.
func LoadConfig() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}
	loadSecrets(cfg)

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// loadEnv overrides fields with any environment variable that is set.
func loadEnv(cfg *Config) error {
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.ServerHost, "SERVER_HOST")
	setString(&cfg.StoreDriver, "STORE_DRIVER")
	setString(&cfg.DefaultKitchen, "DEFAULT_KITCHEN")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBSSLMode, "DB_SSL_MODE")
	setString(&cfg.SQLitePath, "SQLITE_PATH")
	setString(&cfg.RedisHost, "REDIS_HOST")
	setString(&cfg.RedisPort, "REDIS_PORT")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.JWTSecret, "JWT_SECRET")
	setString(&cfg.S3Bucket, "S3_BUCKET_NAME")
	setString(&cfg.S3Region, "AWS_REGION")

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	if err := setInt(&cfg.RedisDB, "REDIS_DB"); err != nil {
		return err
	}
	if err := setInt(&cfg.QuotaBytes, "QUOTA_BYTES"); err != nil {
		return err
	}
	if err := setInt(&cfg.RateLimitLimit, "RATE_LIMIT_LIMIT"); err != nil {
		return err
	}
	if err := setInt(&cfg.KitchenRateLimit, "KITCHEN_RATE_LIMIT"); err != nil {
		return err
	}
	if err := setInt(&cfg.MaxKitchens, "MAX_KITCHENS"); err != nil {
		return err
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_WINDOW %q: %w", v, err)
		}
		cfg.RateLimitWindow = d
	}
	return nil
}

// loadSecrets reads sensitive values from Docker secrets when present.
func loadSecrets(cfg *Config) {
	if v := readSecret("jwt_secret"); v != "" {
		cfg.JWTSecret = v
	}
	if v := readSecret("db_password"); v != "" {
		cfg.DBPassword = v
	}
	if v := readSecret("redis_password"); v != "" {
		cfg.RedisPassword = v
	}
}

func setString(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func setInt(dst *int, name string) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = n
	return nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// PostgresDSN returns the libpq connection string for the configured database.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}
