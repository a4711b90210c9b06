// Package cache provides a Redis-backed store for fetched profile pages, so
// re-running a batch does not hit the source site again.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces page entries.
const keyPrefix = "careerladder:page:"

// RedisCache handles page caching in Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection from a redis:// URL.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewFromClient(client), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// GetPage returns the cached HTML for key. A miss is (_, false, nil).
func (rc *RedisCache) GetPage(ctx context.Context, key string) (string, bool, error) {
	html, err := rc.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return html, true, nil
}

// SetPage stores html under key. A zero ttl keeps the entry until evicted.
func (rc *RedisCache) SetPage(ctx context.Context, key string, html string, ttl time.Duration) error {
	return rc.client.Set(ctx, keyPrefix+key, html, ttl).Err()
}

// Invalidate removes cached pages.
func (rc *RedisCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = keyPrefix + k
	}
	return rc.client.Del(ctx, full...).Err()
}
