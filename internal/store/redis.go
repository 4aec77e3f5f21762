package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores each record as a plain string key.
type RedisBackend struct {
	client *redis.Client
}

// NewRedisBackend wraps an existing client.
func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func redisKey(namespace, key string) string {
	return fmt.Sprintf("kitchen:%s:%s", namespace, key)
}

// Get retrieves a record from Redis
func (r *RedisBackend) Get(ctx context.Context, namespace, key string) (string, error) {
	value, err := r.client.Get(ctx, redisKey(namespace, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s from Redis: %w", key, classifyRedisError(err))
	}
	return value, nil
}

// Set overwrites a record in Redis. Records never expire.
func (r *RedisBackend) Set(ctx context.Context, namespace, key, value string) error {
	if err := r.client.Set(ctx, redisKey(namespace, key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s to Redis: %w", key, classifyRedisError(err))
	}
	return nil
}

// Delete removes a record from Redis
func (r *RedisBackend) Delete(ctx context.Context, namespace, key string) error {
	if err := r.client.Del(ctx, redisKey(namespace, key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from Redis: %w", key, classifyRedisError(err))
	}
	return nil
}

func (r *RedisBackend) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return classifyRedisError(err)
	}
	return nil
}

// classifyRedisError maps maxmemory rejections to ErrQuotaExceeded.
func classifyRedisError(err error) error {
	if strings.HasPrefix(err.Error(), "OOM ") {
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}
	return classifyNetError(err)
}
