// internal/common/cache/redis.go
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rulecraft-chat/internal/common/config"
)

// Cache is a small Redis-backed result cache for gateway responses. A nil
// *Cache is valid and behaves as a cache that always misses, so callers
// never need to branch on whether caching is configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Cache from config.
func New(cfg config.CacheConfig) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &Cache{client: rdb, ttl: config.GetDuration(cfg.TTL)}, nil
}

// NewWithClient wraps an existing Redis client (used by tests).
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Ping tests the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Get retrieves a cached value. A Redis failure is reported as a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a value with the configured TTL. Failures are ignored; the
// cache is strictly an optimization.
func (c *Cache) Set(ctx context.Context, key, value string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, key, value, c.ttl).Err()
}
