package feed

import (
	"strings"
	"time"
)

// Sentinel values substituted when a source omits a field. Returned items
// never carry an empty title, description or link.
const (
	NoTitle          = "No Title"
	NoDescription    = "No Description"
	NoLink           = "#"
	PlaceholderImage = "https://via.placeholder.com/150"
)

// overridable in tests
var timeNow = time.Now

// Normalize maps one raw feed entry to the canonical Item. It never fails:
// every missing or malformed field degrades to a sentinel.
func Normalize(raw RawItem) Item {
	item := Item{
		Title:       NoTitle,
		Description: NoDescription,
		Link:        NoLink,
		PubDate:     raw.Published,
		Image:       resolveImage(raw),
	}
	if t := strings.TrimSpace(raw.Title); t != "" {
		item.Title = t
	}
	if d := Snippet(raw.Description); d != "" {
		item.Description = d
	}
	if l := strings.TrimSpace(raw.Link); l != "" {
		item.Link = l
	}
	if item.PubDate == "" {
		item.PubDate = timeNow().UTC().Format(time.RFC1123Z)
	}
	return item
}

// resolveImage walks the image fallback chain: enclosure URL, then
// media:content, then media:thumbnail, then the placeholder. The first
// non-empty URL wins.
func resolveImage(raw RawItem) string {
	if u := strings.TrimSpace(raw.EnclosureURL); u != "" {
		return u
	}
	if u := firstMediaURL(raw.MediaContent); u != "" {
		return u
	}
	if u := firstMediaURL(raw.MediaThumbnail); u != "" {
		return u
	}
	return PlaceholderImage
}

// firstMediaURL reads the first element only. A sequence whose leading
// element carries no URL falls through to the next step of the chain.
func firstMediaURL(refs []MediaRef) string {
	if len(refs) == 0 {
		return ""
	}
	return strings.TrimSpace(refs[0].URL)
}
