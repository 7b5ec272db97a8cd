// Package cache provides the narrative cache collaborator. The formatter
// stores at most one text blob per process under a fixed key; the cache has
// no TTL and no invalidation beyond process restart (or Redis flush when
// the Redis backend is configured).
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key has no cached value.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a minimal get/set store for opaque text values.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// GetOrCompute returns the cached value for key, or runs fn and caches its
// result. Only a nil error from fn is cached; a failed compute is surfaced
// to the caller untouched. Cache write failures are swallowed: the computed
// value is still returned.
func GetOrCompute(ctx context.Context, c Cache, key string, fn func() (string, error)) (string, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}
	v, err := fn()
	if err != nil {
		return "", err
	}
	_ = c.Set(ctx, key, v)
	return v, nil
}

// MemoryCache is an in-process Cache. Reads and writes are guarded by a
// single mutex; "first successful result gets cached and reused" is the
// only contract required under concurrent requests.
type MemoryCache struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{values: make(map[string]string)}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (m *MemoryCache) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// RedisCache implements Cache using Redis. Values are stored without TTL,
// matching the process-lifetime semantics of the in-memory backend.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) prefixKey(key string) string {
	if c.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", c.prefix, key)
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.prefixKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("redis get error: %w", err)
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, c.prefixKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}
