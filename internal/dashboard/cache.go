package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const summaryCacheKey = "dashboard:summary"

// Cache stores the computed summary in Redis for a fixed TTL. A cold or
// unreachable cache is never fatal — callers fall through to the store.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached summary, or ok=false on miss or any cache error.
func (c *Cache) Get(ctx context.Context) (*Summary, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, summaryCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var summary Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, false
	}
	return &summary, true
}

// Set stores the summary. Errors are returned for logging only.
func (c *Cache) Set(ctx context.Context, summary *Summary) error {
	if c == nil || c.client == nil {
		return errors.New("dashboard: cache not configured")
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryCacheKey, data, c.ttl).Err()
}

// Invalidate drops the cached summary.
func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	err := c.client.Del(ctx, summaryCacheKey).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
