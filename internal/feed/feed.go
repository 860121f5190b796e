package feed

import (
	"context"
)

// Custom media fields a fetcher can be asked to surface on raw items.
const (
	FieldMediaContent   = "media:content"
	FieldMediaThumbnail = "media:thumbnail"
)

// Item is the canonical record served by the API. Field names match the
// public JSON contract.
type Item struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	PubDate     string   `json:"pubDate"`
	Image       string   `json:"image"`
	Score       *float64 `json:"score,omitempty"`
}

// MediaRef is one URL-bearing media element attached to a raw item.
type MediaRef struct {
	URL string
}

// RawItem is a feed entry as delivered by a source, before normalization.
// Every field is optional; upstream feeds disagree on which ones they carry.
// Media fields are slices regardless of whether the source encoded them as a
// single element or a list.
type RawItem struct {
	Title          string
	Description    string
	Link           string
	GUID           string
	Published      string
	EnclosureURL   string
	MediaContent   []MediaRef
	MediaThumbnail []MediaRef
}

// FetchOptions controls what a Fetcher surfaces on the raw items it returns.
type FetchOptions struct {
	// CustomFields names the media extension fields to extract, e.g.
	// FieldMediaContent. Fields not listed here are left empty on RawItem.
	CustomFields []string
}

// Fetcher retrieves and parses a remote RSS/Atom feed.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string, options FetchOptions) ([]RawItem, error)
}
