package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gamefeed/internal/feed"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backend for deployments that share one cache across
// processes. Collections are stored as JSON with the TTL applied by the
// server, so expiry semantics match the in-memory backend.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func sourceKey(key string) string {
	return fmt.Sprintf("gamefeed:source:%s", key)
}

func (r *Redis) Get(ctx context.Context, key string) ([]feed.Item, bool, error) {
	b, err := r.rdb.Get(ctx, sourceKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var items []feed.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (r *Redis) Put(ctx context.Context, key string, items []feed.Item, ttl time.Duration) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, sourceKey(key), b, ttl).Err()
}
