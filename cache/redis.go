package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/extremtechniker/mailtxt/logger"
	"github.com/extremtechniker/mailtxt/resolver"
	"github.com/extremtechniker/mailtxt/util"
	"github.com/redis/go-redis/v9"
)

const DefaultTTL = time.Hour

// Cache keeps raw TXT lookup answers in Redis.
type Cache struct {
	Rdb *redis.Client
	TTL time.Duration
}

// InitRedis connects using REDIS_ADDR, REDIS_PASS, REDIS_DB and CACHE_TTL.
func InitRedis(ctx context.Context) (*Cache, error) {
	redisDb, _ := strconv.ParseInt(util.MustGetenv("REDIS_DB", "0"), 10, 32)
	rdb := redis.NewClient(&redis.Options{
		Addr:     util.MustGetenv("REDIS_ADDR", "localhost:6379"),
		Password: util.MustGetenv("REDIS_PASS", ""),
		DB:       int(redisDb),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Cache{Rdb: rdb, TTL: util.GetenvDuration("CACHE_TTL", DefaultTTL)}, nil
}

func (c *Cache) Close() error {
	return c.Rdb.Close()
}

func CacheKey(name string) string {
	return fmt.Sprintf("dns:txt:%s", strings.TrimSuffix(strings.ToLower(name), "."))
}

// Wrap serves lookups from Redis when possible and stores successful
// answers from next. Failed lookups are never cached, and Redis errors
// fall through to next.
func (c *Cache) Wrap(next resolver.Lookup) resolver.Lookup {
	return func(ctx context.Context, name string) (string, error) {
		key := CacheKey(name)
		s, err := c.Rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			logger.Logger.Debugf("cache hit: %s", name)
			return s, nil
		case !errors.Is(err, redis.Nil):
			logger.Logger.Warnf("redis get %s: %v", key, err)
		}

		out, err := next(ctx, name)
		if err != nil {
			return "", err
		}
		if err := c.Rdb.Set(ctx, key, out, c.TTL).Err(); err != nil {
			logger.Logger.Warnf("failed to cache %s: %v", name, err)
		}
		return out, nil
	}
}
