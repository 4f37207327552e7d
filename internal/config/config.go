package config

import (
	"fmt"
	"time"

	"hacker-menu/internal/sortkey"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"` // interactive mode only; empty discards logs
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig controls the optional Redis listing cache.
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	TTL     string `mapstructure:"ttl"` // duration string, e.g., "5m"
}

// HNConfig controls the Hacker News data source.
type HNConfig struct {
	BaseAPI       string `mapstructure:"base_api"`
	SiteURL       string `mapstructure:"site_url"`
	List          string `mapstructure:"list"` // top, new, best, ask, show, job
	Limit         int    `mapstructure:"limit"`
	FetchInterval string `mapstructure:"fetch_interval"`
}

// DataSources groups available sources.
type DataSources struct {
	HN HNConfig `mapstructure:"hn"`
}

// UIConfig holds the initial interactive state.
type UIConfig struct {
	Sort         string `mapstructure:"sort"`
	Headline     bool   `mapstructure:"headline"`
	TickInterval string `mapstructure:"tick_interval"` // relative time refresh
	Opener       string `mapstructure:"opener"`        // overrides the OS URL handler
}

// Config is the top-level configuration structure.
type Config struct {
	App     AppConfig   `mapstructure:"app"`
	Redis   RedisConfig `mapstructure:"redis"`
	Cache   CacheConfig `mapstructure:"cache"`
	Sources DataSources `mapstructure:"sources"`
	UI      UIConfig    `mapstructure:"ui"`
}

// Defaults lists every settable key with its default value. Registering
// them with the config loader lets environment variables reach keys that
// no config file mentions.
func Defaults() map[string]any {
	return map[string]any{
		"app.log_level":             "info",
		"app.log_file":              "",
		"redis.addr":                "127.0.0.1:6379",
		"redis.username":            "",
		"redis.password":            "",
		"redis.db":                  0,
		"cache.enabled":             false,
		"cache.ttl":                 "5m",
		"sources.hn.base_api":       "https://hacker-news.firebaseio.com/v0",
		"sources.hn.site_url":       "https://news.ycombinator.com",
		"sources.hn.list":           "top",
		"sources.hn.limit":          30,
		"sources.hn.fetch_interval": "5m",
		"ui.sort":                   "rank",
		"ui.headline":               false,
		"ui.tick_interval":          "30s",
		"ui.opener":                 "",
	}
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Cache.TTL == "" {
		c.Cache.TTL = "5m"
	}
	if c.Sources.HN.BaseAPI == "" {
		c.Sources.HN.BaseAPI = "https://hacker-news.firebaseio.com/v0"
	}
	if c.Sources.HN.SiteURL == "" {
		c.Sources.HN.SiteURL = "https://news.ycombinator.com"
	}
	if c.Sources.HN.List == "" {
		c.Sources.HN.List = "top"
	}
	if c.Sources.HN.Limit == 0 {
		c.Sources.HN.Limit = 30
	}
	if c.Sources.HN.FetchInterval == "" {
		c.Sources.HN.FetchInterval = "5m"
	}
	if c.UI.Sort == "" {
		c.UI.Sort = "rank"
	}
	if c.UI.TickInterval == "" {
		c.UI.TickInterval = "30s"
	}
}

// Durations holds the parsed duration settings.
type Durations struct {
	CacheTTL      time.Duration
	FetchInterval time.Duration
	TickInterval  time.Duration
}

// Validate parses the string-typed settings and reports the first bad one.
func (c Config) Validate() (Durations, sortkey.Key, error) {
	var d Durations
	var err error
	if d.CacheTTL, err = time.ParseDuration(c.Cache.TTL); err != nil {
		return d, 0, fmt.Errorf("config: cache.ttl: %w", err)
	}
	if d.FetchInterval, err = time.ParseDuration(c.Sources.HN.FetchInterval); err != nil {
		return d, 0, fmt.Errorf("config: sources.hn.fetch_interval: %w", err)
	}
	if d.TickInterval, err = time.ParseDuration(c.UI.TickInterval); err != nil {
		return d, 0, fmt.Errorf("config: ui.tick_interval: %w", err)
	}
	key, err := sortkey.Parse(c.UI.Sort)
	if err != nil {
		return d, 0, fmt.Errorf("config: ui.sort: %w", err)
	}
	return d, key, nil
}
