package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickmom/quickmom/pkg/config"
)

// RedisStore implements Store on top of Redis for multi-process
// deployments that share the session cache.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Set stores a key-value pair with expiration
func (rs *RedisStore) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	if err := rs.client.Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set cache key: %w", err)
	}
	return nil
}

// Get retrieves a value by key; found is false when absent or expired
func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := rs.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get cache key: %w", err)
	}
	return value, true, nil
}

// Delete removes a key
func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache key: %w", err)
	}
	return nil
}

// Close closes the underlying client
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
