package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client is a thin JSON cache on top of Redis. A nil Client is valid
// and behaves as a permanent cache miss, so Redis stays optional: cache
// failures degrade to database reads, never to request failures.
type Client struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// NewClient wraps a Redis client for JSON caching.
func NewClient(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Client {
	return &Client{rdb: rdb, ttl: ttl, logger: logger}
}

// GetJSON loads a cached value into dest. Returns false on any miss or
// error.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// SetJSONAsync caches a value in the background so the response never
// waits on Redis.
func (c *Client) SetJSONAsync(key string, v interface{}) {
	if c == nil || c.rdb == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data, err := json.Marshal(v)
		if err != nil {
			c.logger.Warn("failed to marshal value for cache", zap.String("key", key), zap.Error(err))
			return
		}
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("failed to cache value", zap.String("key", key), zap.Error(err))
		}
	}()
}

// Version returns the current value of a version counter key,
// initializing it to 1 on first use. Cached list keys embed the version
// so bumping it invalidates every page at once.
func (c *Client) Version(ctx context.Context, key string) (int64, bool) {
	if c == nil || c.rdb == nil {
		return 0, false
	}
	v, err := c.rdb.Get(ctx, key).Int64()
	if err == redis.Nil {
		if err := c.rdb.Set(ctx, key, 1, 0).Err(); err != nil {
			return 0, false
		}
		return 1, true
	}
	if err != nil {
		return 0, false
	}
	return v, true
}

// BumpVersion increments a version counter key.
func (c *Client) BumpVersion(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, key).Err(); err != nil {
		c.logger.Warn("failed to bump cache version", zap.String("key", key), zap.Error(err))
	}
}
