package data

import (
	"context"
	"fmt"
	"time"

	"go-shortlink/internal/conf"
	"go-shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
)

const (
	linkCachePrefix     = "link:"
	defaultLinkCacheTTL = 10 * time.Minute
)

// Compile-time interface checks
var (
	_ domain.LinkCache = (*RedisLinkCache)(nil)
	_ domain.LinkCache = (*noopLinkCache)(nil)
)

// RedisLinkCache implements domain.LinkCache using Redis. Entries are
// the plain long URL keyed by short code; there is nothing else worth
// caching on the resolution path.
type RedisLinkCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *log.Helper
}

// NewLinkCache creates the Redis-backed cache, or a no-op cache when no
// Redis client is configured.
func NewLinkCache(data *Data, c *conf.Data, logger log.Logger) domain.LinkCache {
	if data.rdb == nil {
		return &noopLinkCache{}
	}

	ttl := defaultLinkCacheTTL
	if c != nil && c.Redis != nil {
		ttl = c.Redis.CacheTTL.AsDuration(defaultLinkCacheTTL)
	}

	return &RedisLinkCache{
		rdb: data.rdb,
		ttl: ttl,
		log: log.NewHelper(logger),
	}
}

func (c *RedisLinkCache) cacheKey(code domain.ShortCode) string {
	return linkCachePrefix + code.String()
}

// Get looks up the long URL for a code. A redis.Nil reply is a miss;
// any other error means the cache tier is unavailable and the caller
// must fall back to the store.
func (c *RedisLinkCache) Get(ctx context.Context, code domain.ShortCode) (string, bool, error) {
	val, err := c.rdb.Get(ctx, c.cacheKey(code)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("cache get %q: %w", code.String(), err)
	}
	return val, true, nil
}

// Set stores a code -> long URL mapping with the configured TTL.
func (c *RedisLinkCache) Set(ctx context.Context, code domain.ShortCode, longURL string) error {
	if err := c.rdb.Set(ctx, c.cacheKey(code), longURL, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", code.String(), err)
	}
	return nil
}

// noopLinkCache always misses. Used when Redis is not configured.
type noopLinkCache struct{}

func (c *noopLinkCache) Get(context.Context, domain.ShortCode) (string, bool, error) {
	return "", false, nil
}

func (c *noopLinkCache) Set(context.Context, domain.ShortCode, string) error {
	return nil
}
