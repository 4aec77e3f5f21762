package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/pageza/ghibli-kitchen/backend/config"
	"github.com/pageza/ghibli-kitchen/backend/internal/store"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Resources are the storage connections the server runs on.
type Resources struct {
	Backend store.Backend
	// Redis is set when a Redis server is reachable, whichever store driver is
	// in use; the rate limiter needs it.
	Redis *redis.Client
	DB    *gorm.DB
}

// Open connects the configured store driver.
func Open(cfg *config.Config) (*Resources, error) {
	res := &Resources{}

	switch cfg.StoreDriver {
	case config.DriverMemory:
		res.Backend = store.NewMemoryBackend()
	case config.DriverRedis:
		client, err := NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		res.Redis = client
		res.Backend = store.NewRedisBackend(client)
	case config.DriverSQLite, config.DriverPostgres:
		db, err := New(cfg)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(db); err != nil {
			return nil, err
		}
		res.DB = db
		res.Backend = store.NewGormBackend(db)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if res.Redis == nil && cfg.RedisURL != "" {
		client, err := NewRedisClient(cfg)
		if err != nil {
			// Continue without rate limiting if Redis is not available
			log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
		} else {
			res.Redis = client
		}
	}

	return res, nil
}

// Close releases every open connection.
func (r *Resources) Close() error {
	var errs []error
	if r.Redis != nil {
		errs = append(errs, r.Redis.Close())
	}
	if r.DB != nil {
		if sqlDB, err := r.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
