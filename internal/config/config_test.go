package config

import (
	"testing"
	"time"
)

func TestFillDefaultsInstallsSourceTable(t *testing.T) {
	var cfg Config
	cfg.FillDefaults()

	if len(cfg.Sources) == 0 {
		t.Fatal("expected default sources")
	}

	src, ok := cfg.LookupSource("ign-reviews")
	if !ok {
		t.Fatal("expected ign-reviews source")
	}
	if !src.Reviews {
		t.Error("ign-reviews must be review-bearing")
	}
	if len(src.MediaFields) == 0 {
		t.Error("expected default media fields")
	}

	if src, ok := cfg.LookupSource("ign-news"); !ok || src.Reviews {
		t.Errorf("expected non-review ign-news source, got %+v ok=%v", src, ok)
	}
}

func TestFillDefaultsTTL(t *testing.T) {
	var cfg Config
	cfg.FillDefaults()

	if cfg.Cache.TTLMillis != 300000 {
		t.Errorf("expected default ttl 300000ms, got %d", cfg.Cache.TTLMillis)
	}
	if cfg.TTL() != 5*time.Minute {
		t.Errorf("expected 5m ttl, got %v", cfg.TTL())
	}
}

func TestTTLEnvOverride(t *testing.T) {
	t.Setenv("CACHE_DURATION_MS", "60000")

	var cfg Config
	cfg.FillDefaults()

	if cfg.Cache.TTLMillis != 60000 {
		t.Errorf("expected env override, got %d", cfg.Cache.TTLMillis)
	}
}

func TestSourceURLEnvOverride(t *testing.T) {
	t.Setenv("IGN_REVIEWS_FEED_URL", "https://override.example.com/reviews.xml")

	var cfg Config
	cfg.FillDefaults()

	src, _ := cfg.LookupSource("ign-reviews")
	if src.URL != "https://override.example.com/reviews.xml" {
		t.Errorf("expected URL override, got %q", src.URL)
	}
}

func TestLookupSourceUnknownKey(t *testing.T) {
	var cfg Config
	cfg.FillDefaults()

	if _, ok := cfg.LookupSource("nope"); ok {
		t.Error("expected miss for unknown source key")
	}
}

func TestFetchTimeoutFallback(t *testing.T) {
	cfg := Config{Fetch: FetchConfig{Timeout: "garbage"}}
	if cfg.FetchTimeout() != 10*time.Second {
		t.Errorf("expected 10s fallback, got %v", cfg.FetchTimeout())
	}

	cfg.Fetch.Timeout = "3s"
	if cfg.FetchTimeout() != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.FetchTimeout())
	}
}
