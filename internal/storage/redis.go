package storage

import (
	"context"
	"encoding/json"
	"time"

	"foodie-express/internal/domain"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:restaurants"

// RedisCatalogCache keeps the full restaurant list as one JSON value so
// browsing does not hit Postgres on every filter change.
type RedisCatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{Client: client, TTL: ttl}
}

// GetRestaurants returns the cached list and whether the cache was warm.
func (c *RedisCatalogCache) GetRestaurants(ctx context.Context) ([]domain.Restaurant, bool) {
	payload, err := c.Client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}
	var restaurants []domain.Restaurant
	if err := json.Unmarshal(payload, &restaurants); err != nil {
		return nil, false
	}
	return restaurants, true
}

func (c *RedisCatalogCache) SetRestaurants(ctx context.Context, restaurants []domain.Restaurant) error {
	payload, err := json.Marshal(restaurants)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, catalogKey, payload, c.TTL).Err()
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, catalogKey).Err()
}
