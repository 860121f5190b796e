package cache

import (
	"context"
	"testing"
	"time"

	"gamefeed/internal/feed"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	items := []feed.Item{{Title: "a"}, {Title: "b"}}

	if err := m.Put(ctx, "news", items, 5*time.Minute); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, ok, err := m.Get(ctx, "news")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit within ttl")
	}
	if len(got) != 2 || got[0].Title != "a" || got[1].Title != "b" {
		t.Errorf("unexpected cached items: %+v", got)
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	if err := m.Put(ctx, "news", []feed.Item{{Title: "a"}}, time.Minute); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	now = now.Add(59 * time.Second)
	if _, ok, _ := m.Get(ctx, "news"); !ok {
		t.Fatal("expected hit just before ttl elapses")
	}

	now = now.Add(time.Second)
	if _, ok, _ := m.Get(ctx, "news"); ok {
		t.Fatal("expected miss once ttl has elapsed")
	}
}

func TestMemoryLastWriterWins(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Put(ctx, "news", []feed.Item{{Title: "old"}}, time.Minute)
	m.Put(ctx, "news", []feed.Item{{Title: "new"}}, time.Minute)

	got, ok, _ := m.Get(ctx, "news")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].Title != "new" {
		t.Errorf("expected overwrite, got %+v", got)
	}
}

func TestMemoryMissOnUnknownKey(t *testing.T) {
	m := NewMemory()
	if _, ok, _ := m.Get(context.Background(), "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
}
