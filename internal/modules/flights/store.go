// README: Retention cache for deduplicated result sets, backed by Redis.
package flights

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache retains the full deduplicated result set per normalized query so a
// repeated search inside the TTL does not re-run the round sequence.
type Cache interface {
	Get(ctx context.Context, q Query) (*AggregatedResult, bool)
	Set(ctx context.Context, q Query, result *AggregatedResult) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, q Query) (*AggregatedResult, bool) {
	data, err := c.client.Get(ctx, cacheKey(q)).Bytes()
	if err != nil {
		return nil, false
	}

	var result AggregatedResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (c *RedisCache) Set(ctx context.Context, q Query, result *AggregatedResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(q), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache is used when caching is disabled.
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, q Query) (*AggregatedResult, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, q Query, result *AggregatedResult) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func cacheKey(q Query) string {
	data, _ := json.Marshal(q)
	hash := sha256.Sum256(data)
	return "flights:" + hex.EncodeToString(hash[:])
}
