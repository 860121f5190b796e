package cache

import (
	"context"
	"sync"
	"time"

	"gamefeed/internal/feed"
)

type entry struct {
	items   []feed.Item
	created time.Time
	ttl     time.Duration
}

// Memory is the in-process Store backend. Safe for concurrent use; puts are
// last-writer-wins.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: map[string]entry{},
		now:     time.Now,
	}
}

func (m *Memory) Get(ctx context.Context, key string) ([]feed.Item, bool, error) {
	_ = ctx
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || m.now().Sub(e.created) >= e.ttl {
		return nil, false, nil
	}
	return e.items, true, nil
}

func (m *Memory) Put(ctx context.Context, key string, items []feed.Item, ttl time.Duration) error {
	_ = ctx
	m.mu.Lock()
	m.entries[key] = entry{items: items, created: m.now(), ttl: ttl}
	m.mu.Unlock()
	return nil
}
