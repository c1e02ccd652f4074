// Package cache provides a short-lived Redis cache for assembled decks.
// Deck assembly is the one O(pool) hot path in the engine; everything else is
// a single-row operation. The cache is optional: a nil DeckCache is a no-op.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL keeps decks fresh enough that profile edits show up quickly.
const DefaultTTL = 2 * time.Minute

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// DeckCache stores serialized decks keyed by anchor profile and threshold.
type DeckCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewDeckCache wraps a Redis client. ttl <= 0 uses DefaultTTL.
func NewDeckCache(rdb *redis.Client, ttl time.Duration) *DeckCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DeckCache{rdb: rdb, ttl: ttl}
}

func deckKey(side string, anchorID uuid.UUID, threshold int) string {
	return fmt.Sprintf("deck:%s:%s:%d", side, anchorID, threshold)
}

// Get unmarshals a cached deck into dest. Returns false on miss or when the
// cache is disabled; cache errors are treated as misses, never surfaced.
func (c *DeckCache) Get(ctx context.Context, side string, anchorID uuid.UUID, threshold int, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, deckKey(side, anchorID, threshold)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores a deck with the cache TTL. Failures are silently dropped: the
// cache only ever saves work, it never gates a response.
func (c *DeckCache) Set(ctx context.Context, side string, anchorID uuid.UUID, threshold int, deck any) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(deck)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, deckKey(side, anchorID, threshold), raw, c.ttl).Err()
}
