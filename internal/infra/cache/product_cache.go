package cache

import (
	"context"
	"encoding/json"
	"time"

	"shopmart/config"
	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	productKeyPrefix  = "product:"
	defaultProductTTL = 5 * time.Minute
)

// productCache implements service.ProductCache on top of Redis. Entries are
// JSON snapshots of the product keyed by id.
type productCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache is the constructor for productCache.
func NewProductCache(client *redis.Client, cfg *config.Config) service.ProductCache {
	ttl := defaultProductTTL
	if cfg.Catalog != nil && cfg.Catalog.CacheTTL > 0 {
		ttl = cfg.Catalog.CacheTTL
	}

	return &productCache{client: client, ttl: ttl}
}

func productKey(id uuid.UUID) string {
	return productKeyPrefix + id.String()
}

// Get returns the cached product or nil on a miss.
func (c *productCache) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	raw, err := c.client.Get(ctx, productKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read product from cache")
	}

	var product entity.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		// A corrupt entry behaves like a miss; the repository will refill it.
		return nil, nil
	}

	return &product, nil
}

// Set stores the product under its id with the configured TTL.
func (c *productCache) Set(ctx context.Context, product *entity.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return errors.Wrap(err, "failed to marshal product for cache")
	}

	if err := c.client.Set(ctx, productKey(product.ID), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write product to cache")
	}

	return nil
}

// Invalidate drops the cached entry for the given product id.
func (c *productCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate cached product")
	}

	return nil
}
