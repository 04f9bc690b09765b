package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"local-guides/restaurant-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RestaurantsKey holds the JSON encoded restaurant list.
const RestaurantsKey = "restaurants:all"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) GetRestaurants(ctx context.Context) ([]domain.Restaurant, bool, error) {
	payload, err := c.Client.Get(ctx, RestaurantsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var restaurants []domain.Restaurant
	if err := json.Unmarshal(payload, &restaurants); err != nil {
		return nil, false, err
	}
	return restaurants, true, nil
}

func (c *RedisCache) SetRestaurants(ctx context.Context, restaurants []domain.Restaurant) error {
	payload, err := json.Marshal(restaurants)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, RestaurantsKey, payload, c.TTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, RestaurantsKey).Err()
}
