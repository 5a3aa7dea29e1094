package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/bankledger/internal/usecase"
)

// DefaultTTL bounds how long a parsed file stays cached.
const DefaultTTL = 24 * time.Hour

// ParseCache implements usecase.ParseCache using Redis.
type ParseCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewParseCache creates a new ParseCache. A non-positive ttl uses DefaultTTL.
func NewParseCache(client *redis.Client, ttl time.Duration) *ParseCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ParseCache{
		client: client,
		prefix: "parse:",
		ttl:    ttl,
	}
}

// Get returns the cached result for key, or nil on a miss.
func (c *ParseCache) Get(ctx context.Context, key string) (*usecase.FileResult, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var res usecase.FileResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode cached result %s: %w", key, err)
	}
	return &res, nil
}

// Set stores a parse result.
func (c *ParseCache) Set(ctx context.Context, key string, res *usecase.FileResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result %s: %w", key, err)
	}
	return c.client.Set(ctx, c.prefix+key, data, c.ttl).Err()
}

// Delete drops a cached result.
func (c *ParseCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
