// Package feed is the fetch collaborator behind the listing: it owns the
// latest batch of posts and a busy flag, and replaces the batch wholesale.
package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hacker-menu/internal/model"
)

// Source fetches one listing in rank order.
type Source interface {
	Stories(ctx context.Context, list string, limit int) ([]model.Post, error)
}

// Cache stores listings between runs. A miss returns ok=false and no error.
type Cache interface {
	SaveBatch(ctx context.Context, list string, posts []model.Post, ttl time.Duration) error
	LoadBatch(ctx context.Context, list string) ([]model.Post, bool, error)
}

// Snapshot is the observable state of a Feed.
type Snapshot struct {
	Posts    []model.Post
	Fetching bool
	Err      error
	At       time.Time
}

type Options struct {
	List  string
	Limit int
	// Cache is optional.
	Cache    Cache
	CacheTTL time.Duration
}

type Feed struct {
	src  Source
	opts Options
	now  func() time.Time

	mu       sync.Mutex
	posts    []model.Post
	fetching bool
	err      error
	at       time.Time

	nextID int
	subs   map[int]func(Snapshot)
}

func New(src Source, opts Options) *Feed {
	return &Feed{
		src:   src,
		opts:  opts,
		now:   time.Now,
		posts: []model.Post{},
		subs:  map[int]func(Snapshot){},
	}
}

// Posts returns the latest batch.
func (f *Feed) Posts() []model.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.posts
}

func (f *Feed) IsFetching() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetching
}

// Err is the error of the last fetch, nil once a fetch succeeds.
func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *Feed) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Feed) snapshotLocked() Snapshot {
	return Snapshot{Posts: f.posts, Fetching: f.fetching, Err: f.err, At: f.at}
}

// Subscribe registers fn for every state change. fn runs on the goroutine
// that changed the state, with the feed locked: it must not block or call
// back into the feed.
func (f *Feed) Subscribe(fn func(Snapshot)) (cancel func()) {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// Watch returns a channel that always holds the newest snapshot not yet
// received. Older undelivered snapshots are dropped.
func (f *Feed) Watch() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)
	cancel := f.Subscribe(func(s Snapshot) {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s:
		default:
		}
	})
	return ch, cancel
}

// Load starts a fetch that is served from the cache when it is warm.
// It returns false when a fetch is already running.
func (f *Feed) Load(ctx context.Context) bool {
	return f.start(ctx, true)
}

// Reload starts a fetch that always asks the source. It returns false when
// a fetch is already running.
func (f *Feed) Reload(ctx context.Context) bool {
	return f.start(ctx, false)
}

func (f *Feed) start(ctx context.Context, useCache bool) bool {
	f.mu.Lock()
	if f.fetching {
		f.mu.Unlock()
		return false
	}
	f.fetching = true
	f.publishLocked()
	f.mu.Unlock()

	go func() {
		posts, err := f.Fetch(ctx, useCache)
		f.finish(posts, err)
	}()
	return true
}

func (f *Feed) finish(posts []model.Post, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetching = false
	f.err = err
	if err == nil {
		f.posts = posts
		f.at = f.now()
	}
	f.publishLocked()
}

// publishLocked notifies subscribers in registration order. Subscribers are
// called with the lock held so snapshots arrive in state order.
func (f *Feed) publishLocked() {
	snap := f.snapshotLocked()
	for id := 0; id < f.nextID; id++ {
		if fn, ok := f.subs[id]; ok {
			fn(snap)
		}
	}
}

// Fetch performs one synchronous fetch without touching the feed's state.
func (f *Feed) Fetch(ctx context.Context, useCache bool) ([]model.Post, error) {
	c := f.opts.Cache
	if useCache && c != nil {
		posts, ok, err := c.LoadBatch(ctx, f.opts.List)
		switch {
		case err != nil:
			slog.Warn("feed: cache read failed", "list", f.opts.List, "error", err)
		case ok:
			slog.Debug("feed: served from cache", "list", f.opts.List, "count", len(posts))
			return posts, nil
		}
	}

	posts, err := f.src.Stories(ctx, f.opts.List, f.opts.Limit)
	if err != nil {
		slog.Error("feed: fetch failed", "list", f.opts.List, "error", err)
		return nil, err
	}
	if posts == nil {
		posts = []model.Post{}
	}
	if c != nil && f.opts.CacheTTL > 0 {
		if err := c.SaveBatch(ctx, f.opts.List, posts, f.opts.CacheTTL); err != nil {
			slog.Warn("feed: cache write failed", "list", f.opts.List, "error", err)
		}
	}
	return posts, nil
}
