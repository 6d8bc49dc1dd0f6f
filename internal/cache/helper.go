package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrCacheNotAvailable reports that no Redis client is configured; every
	// helper degrades gracefully in that case.
	ErrCacheNotAvailable = errors.New("cache not available")

	// ErrCacheNotFound reports a cache miss.
	ErrCacheNotFound = errors.New("cache entry not found")
)

// Helper provides common caching operations for repositories
type Helper struct {
	client *redis.Client
	prefix string
}

// NewHelper creates a new cache helper instance
func NewHelper(client *redis.Client, prefix string) *Helper {
	return &Helper{
		client: client,
		prefix: prefix,
	}
}

// Config defines cache configuration for different data types
type Config struct {
	TTL    time.Duration
	Prefix string
}

var (
	// Long-lived cache for category data (read-mostly, changed only by
	// seeding or import)
	CategoryCacheConfig = Config{
		TTL:    10 * time.Minute,
		Prefix: "category:",
	}

	// Medium-lived cache for question data
	QuestionCacheConfig = Config{
		TTL:    5 * time.Minute,
		Prefix: "question:",
	}
)

// GetCacheKey generates a cache key with prefix
func (c *Helper) GetCacheKey(key string) string {
	return fmt.Sprintf("%s%s", c.prefix, key)
}

// Get retrieves and unmarshals data from cache
func (c *Helper) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	cacheKey := c.GetCacheKey(key)
	data, err := c.client.Get(ctx, cacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheNotFound
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}

	return nil
}

// Set marshals and stores data in cache
func (c *Helper) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // Graceful degradation when cache not available
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	cacheKey := c.GetCacheKey(key)
	return c.client.Set(ctx, cacheKey, data, ttl).Err()
}

// Delete removes data from cache
func (c *Helper) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}

	cacheKeys := make([]string, len(keys))
	for i, key := range keys {
		cacheKeys[i] = c.GetCacheKey(key)
	}

	return c.client.Del(ctx, cacheKeys...).Err()
}

// InvalidatePattern removes all keys matching a pattern using SCAN instead of KEYS
func (c *Helper) InvalidatePattern(ctx context.Context, pattern string) error {
	if c.client == nil {
		return nil
	}

	fullPattern := c.GetCacheKey(pattern)
	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = c.client.Scan(ctx, cursor, fullPattern, 100).Result()
		if err != nil {
			return fmt.Errorf("cache scan pattern error: %w", err)
		}
		keys = append(keys, scanKeys...)
		if cursor == 0 {
			break
		}
	}

	if len(keys) == 0 {
		return nil
	}

	return c.client.Del(ctx, keys...).Err()
}
