package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "catalog:v1:"
	generationKey = "catalog:generation"
)

// QueryCache stores read-model responses keyed by request path and parameters.
// Entries go stale after ttl and are dropped wholesale by Invalidate on any catalog write.
// Readers store under the generation they observed before loading, and Invalidate
// advances it, so a load that raced a write is never served afterwards.
// A nil *QueryCache, or one without a client or with ttl <= 0, is a no-op.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQueryCache(client *redis.Client, ttl time.Duration) *QueryCache {
	return &QueryCache{client: client, ttl: ttl}
}

// Key builds "catalog:v1:<path>?<params>" with params sorted by name. Empty values are dropped
// so that "?search=" and no query share an entry.
func Key(path string, params url.Values) string {
	clean := url.Values{}
	for name, values := range params {
		for _, v := range values {
			if v != "" {
				clean.Add(name, v)
			}
		}
	}
	if len(clean) == 0 {
		return keyPrefix + path
	}
	return keyPrefix + path + "?" + clean.Encode()
}

// AtGeneration scopes key to a write generation.
func AtGeneration(key string, gen int64) string {
	return fmt.Sprintf("%s#%d", key, gen)
}

// Generation returns the current write generation, 0 before the first Invalidate.
func (c *QueryCache) Generation(ctx context.Context) (int64, error) {
	if !c.Enabled() {
		return 0, nil
	}

	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	return gen, nil
}

func (c *QueryCache) Enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

func (c *QueryCache) TTL() time.Duration {
	if c == nil {
		return 0
	}
	return c.ttl
}

// GetJSON decodes the cached value into dest. It reports false on a miss.
func (c *QueryCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.client.Del(ctx, key)
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *QueryCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	if !c.Enabled() {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate advances the generation, then removes every catalog entry and returns
// how many keys were deleted.
func (c *QueryCache) Invalidate(ctx context.Context) (int, error) {
	if c == nil || c.client == nil {
		return 0, nil
	}

	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}

	deleted := 0
	batch := make([]string, 0, 100)
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			n, err := c.client.Del(ctx, batch...).Result()
			if err != nil {
				return deleted, fmt.Errorf("cache invalidate: %w", err)
			}
			deleted += int(n)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("cache scan: %w", err)
	}

	if len(batch) > 0 {
		n, err := c.client.Del(ctx, batch...).Result()
		if err != nil {
			return deleted, fmt.Errorf("cache invalidate: %w", err)
		}
		deleted += int(n)
	}
	return deleted, nil
}
