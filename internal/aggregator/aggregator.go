// Package aggregator orchestrates the feed pipeline for one source: cache
// read, fetch on miss, normalization, scoring and ordering for review
// sources, cache write-back.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"gamefeed/internal/cache"
	"gamefeed/internal/config"
	"gamefeed/internal/feed"

	"golang.org/x/sync/singleflight"
)

// ErrItemNotFound is returned when no item in a source's working set matches
// the requested identifier.
var ErrItemNotFound = errors.New("item not found")

// FetchError wraps an upstream failure with the source it came from. The
// aggregator never retries; retry policy lives inside the fetch capability.
type FetchError struct {
	Source string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.Source, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Aggregator struct {
	fetcher feed.Fetcher
	store   cache.Store
	ttl     time.Duration
	logger  *slog.Logger
	group   singleflight.Group
}

func New(fetcher feed.Fetcher, store cache.Store, ttl time.Duration, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		fetcher: fetcher,
		store:   store,
		ttl:     ttl,
		logger:  logger,
	}
}

// Collection returns the full normalized working set for a source. Cache
// hits are served as-is; on a miss the feed is fetched, normalized, scored
// and ordered if the source is review-bearing, and written back under the
// source key with the configured TTL. The cached set is always the
// unfiltered, unpaginated whole. Concurrent misses for the same key share a
// single in-flight fetch.
func (a *Aggregator) Collection(ctx context.Context, src config.Source) ([]feed.Item, error) {
	items, ok, err := a.store.Get(ctx, src.Key)
	if err != nil {
		a.logger.Warn("cache read failed", "source", src.Key, "error", err)
	}
	if ok {
		return items, nil
	}

	result, err, _ := a.group.Do(src.Key, func() (any, error) {
		return a.refresh(ctx, src)
	})
	if err != nil {
		return nil, err
	}
	return result.([]feed.Item), nil
}

// ItemByLink finds the item whose link contains id, refreshing the working
// set first if the cache is cold.
func (a *Aggregator) ItemByLink(ctx context.Context, src config.Source, id string) (feed.Item, error) {
	items, err := a.Collection(ctx, src)
	if err != nil {
		return feed.Item{}, err
	}
	for _, item := range items {
		if strings.Contains(item.Link, id) {
			return item, nil
		}
	}
	return feed.Item{}, ErrItemNotFound
}

func (a *Aggregator) refresh(ctx context.Context, src config.Source) ([]feed.Item, error) {
	// The fetch and write-back outlive an abandoned request so the result
	// can still populate the cache for the next caller; the fetcher
	// enforces its own timeout.
	fetchCtx := context.WithoutCancel(ctx)
	raw, err := a.fetcher.Fetch(fetchCtx, src.URL, feed.FetchOptions{CustomFields: src.MediaFields})
	if err != nil {
		return nil, &FetchError{Source: src.Key, URL: src.URL, Err: err}
	}

	items := make([]feed.Item, 0, len(raw))
	for _, r := range raw {
		item := feed.Normalize(r)
		if src.Reviews {
			item.Score = feed.ExtractScore(item.Description)
		}
		items = append(items, item)
	}
	if src.Reviews {
		sortByScore(items)
	}

	if err := a.store.Put(fetchCtx, src.Key, items, a.ttl); err != nil {
		a.logger.Warn("cache write failed", "source", src.Key, "error", err)
	}
	a.logger.Info("feed refreshed", "source", src.Key, "items", len(items))
	return items, nil
}

// sortByScore orders items by score descending. A missing score ranks as 0,
// and the sort is stable so tied and unscored items keep feed order.
func sortByScore(items []feed.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return scoreOf(items[i]) > scoreOf(items[j])
	})
}

func scoreOf(item feed.Item) float64 {
	if item.Score == nil {
		return 0
	}
	return *item.Score
}
