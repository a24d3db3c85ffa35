// Package cache is a thin read-through layer over Redis. It only ever
// accelerates reads: every write path invalidates, and consistency decisions
// (conflicts, defaults) always go to the database.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// New connects to Redis. An empty URL returns a nil cache, which every
// method treats as a miss.
func New(url string, log zerolog.Logger) *Cache {
	if url == "" {
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Warn().Err(err).Msg("invalid REDIS_URL, cache disabled")
		return nil
	}

	return &Cache{
		rdb: redis.NewClient(opts),
		ttl: 5 * time.Minute,
		log: log,
	}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt, dropping")
		c.rdb.Del(ctx, key)
		return false
	}

	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache invalidate failed")
	}
}

// InvalidatePrefix removes every key under a prefix. Used for availability,
// where one booking write stales a whole day of slot reads.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	if c == nil {
		return
	}

	iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Str("prefix", prefix).Msg("cache scan failed")
	}
}

func TemplatesKey(userID uint) string {
	return fmt.Sprintf("soloflow:templates:%d", userID)
}

func AvailabilityPrefix(professionalID uint) string {
	return fmt.Sprintf("soloflow:slots:%d:", professionalID)
}

func AvailabilityKey(professionalID uint, date string, durationMin int) string {
	return fmt.Sprintf("%s%s:%d", AvailabilityPrefix(professionalID), date, durationMin)
}
