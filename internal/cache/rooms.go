// Package cache provides an optional Redis read-through cache for the
// available-rooms payload. A nil *RoomsCache or nil Redis client disables
// caching entirely; callers never need to branch on configuration.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RoomsCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRoomsCache wraps a Redis client. Returns nil when the client is nil or
// the TTL is non-positive.
func NewRoomsCache(client *redis.Client, ttl time.Duration) *RoomsCache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &RoomsCache{redis: client, ttl: ttl}
}

func key(day string) string {
	return fmt.Sprintf("rooms:available:%s", day)
}

// Get loads the cached payload for a day into out. Reports whether the cache
// had a usable entry; any Redis or decoding error counts as a miss.
func (c *RoomsCache) Get(ctx context.Context, day string, out any) bool {
	if c == nil {
		return false
	}
	val, err := c.redis.Get(ctx, key(day)).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

// Set stores the payload for a day. Errors are ignored: the cache is an
// optimization, not a source of truth.
func (c *RoomsCache) Set(ctx context.Context, day string, val any) {
	if c == nil {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key(day), data, c.ttl).Err()
}

// Forget drops the cached entry for a day. Called after a successful booking
// so the availability list never serves a stale room.
func (c *RoomsCache) Forget(ctx context.Context, day string) {
	if c == nil {
		return
	}
	_ = c.redis.Del(ctx, key(day)).Err()
}
