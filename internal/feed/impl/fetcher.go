package impl

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gamefeed/internal/feed"
	"gamefeed/internal/retry"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

// Fetcher retrieves feeds over HTTP and parses them with gofeed. Retry and
// timeout policy live here; callers never retry.
type Fetcher struct {
	client *http.Client
	parser *gofeed.Parser
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	client := &http.Client{Timeout: timeout}
	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = userAgent
	return &Fetcher{client: client, parser: parser}
}

func (f *Fetcher) Fetch(ctx context.Context, feedURL string, options feed.FetchOptions) ([]feed.RawItem, error) {
	var parsed *gofeed.Feed
	err := retry.Do(ctx, retry.Config{Attempts: 3, BaseDelay: 200 * time.Millisecond}, func() error {
		result, err := f.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			return err
		}
		parsed = result
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	wantContent := hasField(options.CustomFields, feed.FieldMediaContent)
	wantThumbnail := hasField(options.CustomFields, feed.FieldMediaThumbnail)

	items := make([]feed.RawItem, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		raw := feed.RawItem{
			Title:       entry.Title,
			Description: entry.Description,
			Link:        entry.Link,
			GUID:        entry.GUID,
			Published:   entry.Published,
		}
		for _, enc := range entry.Enclosures {
			if enc != nil && enc.URL != "" {
				raw.EnclosureURL = enc.URL
				break
			}
		}
		if wantContent {
			raw.MediaContent = mediaRefs(entry.Extensions, "content")
		}
		if wantThumbnail {
			raw.MediaThumbnail = mediaRefs(entry.Extensions, "thumbnail")
		}
		items = append(items, raw)
	}

	return items, nil
}

// mediaRefs flattens a media extension field into MediaRefs. gofeed already
// collapses single-element and repeated encodings into a slice, so both
// upstream shapes arrive here the same way.
func mediaRefs(extensions ext.Extensions, field string) []feed.MediaRef {
	media, ok := extensions["media"]
	if !ok {
		return nil
	}
	elements := media[field]
	if len(elements) == 0 {
		return nil
	}
	refs := make([]feed.MediaRef, 0, len(elements))
	for _, element := range elements {
		refs = append(refs, feed.MediaRef{URL: element.Attrs["url"]})
	}
	return refs
}

func hasField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
