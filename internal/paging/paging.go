// Package paging slices normalized collections into pages and applies the
// free-text query filter.
package paging

import (
	"strings"

	"gamefeed/internal/feed"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Meta is the pagination block of a list response.
type Meta struct {
	Current int  `json:"current"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// Paginate returns the [start, end) window of items for a 1-based page along
// with its metadata. Out-of-range pages yield an empty slice, never an
// error; non-positive inputs fall back to the defaults.
func Paginate(items []feed.Item, page, limit int) ([]feed.Item, Meta) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	start := (page - 1) * limit
	end := page * limit
	meta := Meta{
		Current: page,
		Total:   (len(items) + limit - 1) / limit,
		HasMore: end < len(items),
	}

	if start >= len(items) {
		return []feed.Item{}, meta
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], meta
}

// Filter keeps items whose title or description contains query,
// case-insensitively. An empty query passes everything through.
func Filter(items []feed.Item, query string) []feed.Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	matched := make([]feed.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), query) ||
			strings.Contains(strings.ToLower(item.Description), query) {
			matched = append(matched, item)
		}
	}
	return matched
}
