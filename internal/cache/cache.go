package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NameCache memoizes product-number to product-name resolutions so numeric
// queries do not hit the warehouse on every request.
type NameCache interface {
	GetProductName(ctx context.Context, productNumber string) (string, bool, error)
	SetProductName(ctx context.Context, productNumber, productName string) error
}

type redisNameCache struct {
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
}

func NewRedisNameCache(redisClient *redis.Client, ttl time.Duration) NameCache {
	return &redisNameCache{
		redisClient: redisClient,
		keyPrefix:   "shopchannel:product:name:",
		ttl:         ttl,
	}
}

func (c *redisNameCache) GetProductName(ctx context.Context, productNumber string) (string, bool, error) {
	key := c.keyPrefix + productNumber
	val, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil // Not cached yet
		}
		return "", false, fmt.Errorf("failed to get cached name for product %s: %w", productNumber, err)
	}

	return val, true, nil
}

func (c *redisNameCache) SetProductName(ctx context.Context, productNumber, productName string) error {
	key := c.keyPrefix + productNumber
	err := c.redisClient.Set(ctx, key, productName, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache name for product %s: %w", productNumber, err)
	}
	return nil
}
