package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	lines := make([]string, len(e))
	for i, ve := range e {
		lines[i] = ve.Error()
	}
	return fmt.Sprintf("configuration validation failed:\n%s", strings.Join(lines, "\n"))
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errs ValidationErrors

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, ValidationError{"SERVER_PORT", fmt.Sprintf("%q is not a valid port", cfg.ServerPort)})
	}
	if strings.TrimSpace(cfg.DefaultKitchen) == "" {
		errs = append(errs, ValidationError{"DEFAULT_KITCHEN", "must not be empty"})
	}
	if cfg.QuotaBytes <= 0 {
		errs = append(errs, ValidationError{"QUOTA_BYTES", "must be positive"})
	}
	if cfg.RateLimitLimit <= 0 || cfg.RateLimitWindow <= 0 {
		errs = append(errs, ValidationError{"RATE_LIMIT", "limit and window must be positive"})
	}
	if cfg.KitchenRateLimit <= 0 {
		errs = append(errs, ValidationError{"KITCHEN_RATE_LIMIT", "must be positive"})
	}
	if cfg.MaxKitchens <= 0 {
		errs = append(errs, ValidationError{"MAX_KITCHENS", "must be positive"})
	}

	// Driver-specific requirements
	switch cfg.StoreDriver {
	case DriverMemory:
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{"SQLITE_PATH", "required for the sqlite driver"})
		}
	case DriverPostgres:
		required := []struct{ field, value string }{
			{"DB_HOST", cfg.DBHost},
			{"DB_PORT", cfg.DBPort},
			{"DB_USER", cfg.DBUser},
			{"DB_NAME", cfg.DBName},
		}
		for _, r := range required {
			if r.value == "" {
				errs = append(errs, ValidationError{r.field, "required for the postgres driver"})
			}
		}
	case DriverRedis:
		if cfg.RedisURL == "" && cfg.RedisHost == "" {
			errs = append(errs, ValidationError{"REDIS_URL", "REDIS_URL or REDIS_HOST is required for the redis driver"})
		}
	default:
		errs = append(errs, ValidationError{"STORE_DRIVER", fmt.Sprintf("unknown driver %q", cfg.StoreDriver)})
	}

	// Sensitive values
	if cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{"JWT_SECRET", "must not be empty"})
	}
	if env == Production && cfg.JWTSecret == defaultJWTSecret {
		errs = append(errs, ValidationError{"JWT_SECRET", "the development secret can't be used in production"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
