package cmd

import (
	"context"
	"io"
	"log/slog"

	"hacker-menu/internal/config"
	"hacker-menu/internal/dispatch"
	"hacker-menu/internal/feed"
	"hacker-menu/internal/hackernews"
	"hacker-menu/internal/model"
	"hacker-menu/internal/redisclient"
	"hacker-menu/internal/storage"

	"github.com/redis/go-redis/v9"
)

// app bundles the collaborators shared by the subcommands.
type app struct {
	cfg   config.Config
	dur   config.Durations
	hn    *hackernews.Client
	rdb   *redis.Client
	store *storage.RedisStore
	feed  *feed.Feed
	links *dispatch.Dispatcher
	close func()
}

func newApp(cfg config.Config) (*app, error) {
	dur, _, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:   cfg,
		dur:   dur,
		hn:    hackernews.NewClient(cfg.Sources.HN.BaseAPI),
		close: func() {},
	}
	opts := feed.Options{
		List:  cfg.Sources.HN.List,
		Limit: cfg.Sources.HN.Limit,
	}
	if cfg.Cache.Enabled {
		a.rdb = redisclient.New(cfg.Redis)
		a.close = func() { closeQuietly(a.rdb) }
		a.store = storage.NewRedisStore(a.rdb)
		opts.Cache = a.store
		opts.CacheTTL = dur.CacheTTL
		slog.Debug("cache enabled", "addr", cfg.Redis.Addr, "ttl", dur.CacheTTL)
	}
	a.feed = feed.New(a.hn, opts)
	a.links = dispatch.New(cfg.Sources.HN.SiteURL, dispatch.ShellOpener{Command: cfg.UI.Opener})
	return a, nil
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Debug("close failed", "error", err)
	}
}

// cachedItem looks id up in the cache when one is configured.
func (a *app) cachedItem(ctx context.Context, id int) (model.Post, bool, error) {
	if a.store == nil {
		return model.Post{}, false, nil
	}
	return a.store.GetItem(ctx, id)
}
