package paging

import (
	"fmt"
	"testing"

	"gamefeed/internal/feed"
)

func collection(n int) []feed.Item {
	items := make([]feed.Item, n)
	for i := range items {
		items[i] = feed.Item{Title: fmt.Sprintf("item-%d", i)}
	}
	return items
}

func TestPaginate(t *testing.T) {
	items := collection(25)

	tests := []struct {
		name     string
		page     int
		limit    int
		wantLen  int
		wantMeta Meta
	}{
		{name: "first page", page: 1, limit: 10, wantLen: 10, wantMeta: Meta{Current: 1, Total: 3, HasMore: true}},
		{name: "last partial page", page: 3, limit: 10, wantLen: 5, wantMeta: Meta{Current: 3, Total: 3, HasMore: false}},
		{name: "page past the end", page: 4, limit: 10, wantLen: 0, wantMeta: Meta{Current: 4, Total: 3, HasMore: false}},
		{name: "defaults on non-positive input", page: 0, limit: -1, wantLen: 10, wantMeta: Meta{Current: 1, Total: 3, HasMore: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, meta := Paginate(items, tc.page, tc.limit)
			if len(got) != tc.wantLen {
				t.Errorf("expected %d items, got %d", tc.wantLen, len(got))
			}
			if meta != tc.wantMeta {
				t.Errorf("expected meta %+v, got %+v", tc.wantMeta, meta)
			}
		})
	}
}

func TestPaginateWindowContents(t *testing.T) {
	items := collection(25)
	got, _ := Paginate(items, 2, 10)
	if got[0].Title != "item-10" || got[9].Title != "item-19" {
		t.Errorf("unexpected window bounds: first %q last %q", got[0].Title, got[9].Title)
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	got, meta := Paginate(nil, 1, 10)
	if len(got) != 0 {
		t.Errorf("expected empty page, got %d items", len(got))
	}
	want := Meta{Current: 1, Total: 0, HasMore: false}
	if meta != want {
		t.Errorf("expected meta %+v, got %+v", want, meta)
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	items := []feed.Item{
		{Title: "Zelda Review", Description: "An instant classic."},
		{Title: "Industry news", Description: "Layoffs continue."},
	}

	for _, q := range []string{"zelda", "ZELDA", "Zelda"} {
		got := Filter(items, q)
		if len(got) != 1 || got[0].Title != "Zelda Review" {
			t.Errorf("query %q: expected the Zelda item, got %+v", q, got)
		}
	}
}

func TestFilterMatchesDescription(t *testing.T) {
	items := []feed.Item{
		{Title: "Weekly roundup", Description: "Everything Zelda this week"},
	}
	if got := Filter(items, "zelda"); len(got) != 1 {
		t.Errorf("expected description match, got %+v", got)
	}
}

func TestFilterEmptyQueryPassesThrough(t *testing.T) {
	items := collection(3)
	if got := Filter(items, ""); len(got) != 3 {
		t.Errorf("expected passthrough, got %d items", len(got))
	}
	if got := Filter(items, "   "); len(got) != 3 {
		t.Errorf("expected passthrough for blank query, got %d items", len(got))
	}
}

func TestFilterNoMatches(t *testing.T) {
	items := collection(3)
	got := Filter(items, "nonexistent")
	if len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}
