package mock

import (
	"context"

	"gamefeed/internal/feed"
)

// Fetcher is a map-backed feed.Fetcher for tests.
type Fetcher struct {
	RawByFeed map[string][]feed.RawItem
	ErrByFeed map[string]error
	Calls     map[string]int
}

func (f *Fetcher) Fetch(ctx context.Context, feedURL string, options feed.FetchOptions) ([]feed.RawItem, error) {
	_ = ctx
	if f.Calls == nil {
		f.Calls = map[string]int{}
	}
	f.Calls[feedURL]++
	if f.ErrByFeed != nil {
		if err, ok := f.ErrByFeed[feedURL]; ok {
			return nil, err
		}
	}
	return f.RawByFeed[feedURL], nil
}
