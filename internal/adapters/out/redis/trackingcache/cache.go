// Package trackingcache provides a Redis-backed implementation of the
// tracking view cache. Views are stored as JSON under the query's cache key
// and expire by TTL only; writers never invalidate entries, so a served view
// may lag the store by up to the TTL.
package trackingcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"parceltrack/internal/core/application/usecases/queries"
)

// RedisTrackingViewCache caches tracking views in Redis.
type RedisTrackingViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTrackingViewCache connects to Redis at addr and verifies the
// connection with a ping before returning the cache.
func NewRedisTrackingViewCache(addr string, ttl time.Duration) (*RedisTrackingViewCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisTrackingViewCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// Get returns the cached view for the key, or nil on a miss.
func (c *RedisTrackingViewCache) Get(
	ctx context.Context, key string,
) (*queries.GetTrackingQueryResponse, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var view queries.GetTrackingQueryResponse
	if err = json.Unmarshal(payload, &view); err != nil {
		return nil, err
	}

	return &view, nil
}

// Set stores the view under the key with the configured TTL.
func (c *RedisTrackingViewCache) Set(
	ctx context.Context, key string, view *queries.GetTrackingQueryResponse,
) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// Close releases the underlying Redis connection.
func (c *RedisTrackingViewCache) Close() error {
	return c.client.Close()
}
