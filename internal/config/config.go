package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// RatePerSecond caps requests per client IP; 0 disables limiting.
	RatePerSecond float64 `mapstructure:"rate_per_second"`
}

// CacheConfig holds feed cache settings.
type CacheConfig struct {
	TTLMillis int `mapstructure:"ttl_ms"`
}

// FetchConfig controls the upstream feed fetcher.
type FetchConfig struct {
	Timeout   string `mapstructure:"timeout"` // duration string, e.g. "10s"
	UserAgent string `mapstructure:"user_agent"`
}

// RedisConfig holds optional redis cache backend settings. An empty Addr
// selects the in-memory backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Source is one syndicated feed endpoint with its parsing configuration.
type Source struct {
	Key string `mapstructure:"key"`
	URL string `mapstructure:"url"`
	// Reviews marks a review-bearing source: items get score extraction
	// and score-descending ordering.
	Reviews bool `mapstructure:"reviews"`
	// MediaFields names the custom feed fields to surface for image
	// resolution, e.g. "media:content".
	MediaFields []string `mapstructure:"media_fields"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server  ServerConfig `mapstructure:"server"`
	Cache   CacheConfig  `mapstructure:"cache"`
	Fetch   FetchConfig  `mapstructure:"fetch"`
	Redis   RedisConfig  `mapstructure:"redis"`
	Sources []Source     `mapstructure:"sources"`
}

const defaultTTLMillis = 300000 // 5 minutes

var defaultMediaFields = []string{"media:content", "media:thumbnail"}

// FillDefaults applies default values and environment overrides. With no
// sources configured, the stock source table is installed; each source URL
// can be overridden via <KEY>_FEED_URL (e.g. IGN_REVIEWS_FEED_URL).
func (c *Config) FillDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":" + envString("PORT", "3000")
	}
	if c.Cache.TTLMillis <= 0 {
		c.Cache.TTLMillis = defaultTTLMillis
	}
	c.Cache.TTLMillis = envInt("CACHE_DURATION_MS", c.Cache.TTLMillis)
	if c.Fetch.Timeout == "" {
		c.Fetch.Timeout = "10s"
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "gamefeed/0.1"
	}
	if len(c.Sources) == 0 {
		c.Sources = defaultSources()
	}
	for i := range c.Sources {
		src := &c.Sources[i]
		src.URL = envString(feedURLEnv(src.Key), src.URL)
		if len(src.MediaFields) == 0 {
			src.MediaFields = defaultMediaFields
		}
	}
}

// LookupSource finds a configured source by key.
func (c *Config) LookupSource(key string) (Source, bool) {
	for _, src := range c.Sources {
		if src.Key == key {
			return src, true
		}
	}
	return Source{}, false
}

// TTL returns the cache TTL as a duration.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.Cache.TTLMillis) * time.Millisecond
}

// FetchTimeout parses the fetch timeout, falling back to 10s on a bad value.
func (c *Config) FetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

func defaultSources() []Source {
	return []Source{
		{Key: "ign-reviews", URL: "https://feeds.feedburner.com/ign/game-reviews", Reviews: true},
		{Key: "ign-news", URL: "https://feeds.feedburner.com/ign/news"},
		{Key: "gamespot-news", URL: "https://www.gamespot.com/feeds/game-news/"},
		{Key: "polygon", URL: "https://www.polygon.com/rss/index.xml"},
		{Key: "kotaku", URL: "https://kotaku.com/rss"},
		{Key: "eurogamer", URL: "https://www.eurogamer.net/feed"},
		{Key: "pcgamer", URL: "https://www.pcgamer.com/rss/"},
	}
}

// feedURLEnv maps a source key to its URL override variable:
// "ign-reviews" -> "IGN_REVIEWS_FEED_URL".
func feedURLEnv(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_")) + "_FEED_URL"
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
