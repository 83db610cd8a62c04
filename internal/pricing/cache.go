package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dukerupert/mealcart/internal/grocery"
	"github.com/dukerupert/mealcart/internal/metrics"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "mealcart:quotes:"

// QuoteCache stores provider results. A miss is (nil, false, nil).
type QuoteCache interface {
	Get(ctx context.Context, key string) ([]Quote, bool, error)
	Set(ctx context.Context, key string, quotes []Quote, ttl time.Duration) error
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]Quote, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var quotes []Quote
	if err := json.Unmarshal(b, &quotes); err != nil {
		return nil, false, fmt.Errorf("decode cached quotes: %w", err)
	}
	return quotes, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, quotes []Quote, ttl time.Duration) error {
	b, err := json.Marshal(quotes)
	if err != nil {
		return fmt.Errorf("encode quotes: %w", err)
	}
	if err := c.client.Set(ctx, key, b, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// CachedProvider wraps a live provider with a TTL cache. Entries expire on
// their own; nothing invalidates them early. Empty results are not cached so
// a transient miss does not pin a store to simulated prices.
type CachedProvider struct {
	next    Provider
	cache   QuoteCache
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewCachedProvider(next Provider, cache QuoteCache, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *CachedProvider {
	return &CachedProvider{
		next:    next,
		cache:   cache,
		ttl:     ttl,
		metrics: m,
		logger:  logger.With("component", "price_cache"),
	}
}

func cacheKey(itemName, storeID string) string {
	return cacheKeyPrefix + storeID + ":" + grocery.NormalizeName(itemName)
}

func (c *CachedProvider) SearchProductPrice(ctx context.Context, itemName, storeID string) ([]Quote, error) {
	key := cacheKey(itemName, storeID)

	quotes, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.metrics.CacheOps.WithLabelValues("get", "error").Inc()
		c.logger.Warn("price cache get failed", "key", key, "error", err)
	case ok:
		c.metrics.CacheOps.WithLabelValues("get", "hit").Inc()
		for i := range quotes {
			quotes[i].cached = true
		}
		return quotes, nil
	default:
		c.metrics.CacheOps.WithLabelValues("get", "miss").Inc()
	}

	quotes, err = c.next.SearchProductPrice(ctx, itemName, storeID)
	if err != nil || len(quotes) == 0 {
		return quotes, err
	}

	if err := c.cache.Set(ctx, key, quotes, c.ttl); err != nil {
		c.metrics.CacheOps.WithLabelValues("set", "error").Inc()
		c.logger.Warn("price cache set failed", "key", key, "error", err)
	}
	return quotes, nil
}
