// Package cache holds normalized feed collections per source key with a
// time-to-live. Entries are overwritten wholesale on every put and expire
// lazily: an elapsed TTL is detected on the next read, there is no eviction
// notification.
package cache

import (
	"context"
	"time"

	"gamefeed/internal/feed"
)

// Store is the cache contract shared by all backends. Get reports a miss for
// unknown and expired keys alike; a backend error also counts as a miss at
// the call site, err is surfaced for logging only.
type Store interface {
	Get(ctx context.Context, key string) ([]feed.Item, bool, error)
	Put(ctx context.Context, key string, items []feed.Item, ttl time.Duration) error
}
