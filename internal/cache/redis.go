package cache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONCache stores JSON encoded values in Redis with a fixed TTL.
type JSONCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewJSONCache creates a JSONCache.
func NewJSONCache(rdb redis.Cmdable, ttl time.Duration) *JSONCache {
	return &JSONCache{rdb: rdb, ttl: ttl}
}

// Get decodes the value under key into dst. It reports false on a miss.
func (c *JSONCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Set encodes v and stores it under key.
func (c *JSONCache) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// Delete removes keys.
func (c *JSONCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
