package keycache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when the key is not cached.
var ErrMiss = errors.New("api key not cached")

// KeyCache caches tenant API-key lookups in Redis so machine clients do not
// hit the store on every request. Entries expire; rotation invalidates the
// old key eagerly.
type KeyCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func New(redisClient *redis.Client, ttl time.Duration) *KeyCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &KeyCache{redis: redisClient, ttl: ttl}
}

func cacheKey(apiKey string) string {
	return fmt.Sprintf("tenantkey:%s", apiKey)
}

// Get returns the tenant id cached for apiKey, or ErrMiss.
func (c *KeyCache) Get(ctx context.Context, apiKey string) (uuid.UUID, error) {
	val, err := c.redis.Get(ctx, cacheKey(apiKey)).Result()
	if err == redis.Nil {
		return uuid.Nil, ErrMiss
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to read key cache: %w", err)
	}

	tenantID, err := uuid.Parse(val)
	if err != nil {
		// A corrupt entry behaves like a miss.
		return uuid.Nil, ErrMiss
	}
	return tenantID, nil
}

// Set caches an apiKey → tenant mapping with the configured TTL.
func (c *KeyCache) Set(ctx context.Context, apiKey string, tenantID uuid.UUID) error {
	if err := c.redis.Set(ctx, cacheKey(apiKey), tenantID.String(), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache api key: %w", err)
	}
	return nil
}

// Invalidate removes a cached key, used when a tenant rotates its API key.
func (c *KeyCache) Invalidate(ctx context.Context, apiKey string) error {
	if err := c.redis.Del(ctx, cacheKey(apiKey)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate api key: %w", err)
	}
	return nil
}
