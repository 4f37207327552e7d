// Package dispatch opens a post's links in the OS without waiting on them.
package dispatch

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"hacker-menu/internal/model"
)

// DefaultSiteURL is where discussion threads live.
const DefaultSiteURL = "https://news.ycombinator.com"

// Opener hands a URL to something that can display it.
type Opener interface {
	Open(ctx context.Context, rawURL string) error
}

// Dispatcher resolves a post into open requests and fires them. Every call
// issues fresh requests; nothing is deduplicated or retried.
type Dispatcher struct {
	site   string
	opener Opener
	wg     sync.WaitGroup
}

func New(siteURL string, opener Opener) *Dispatcher {
	if strings.TrimSpace(siteURL) == "" {
		siteURL = DefaultSiteURL
	}
	return &Dispatcher{site: strings.TrimRight(siteURL, "/"), opener: opener}
}

// DiscussionURL is the thread URL for post, always resolvable.
func (d *Dispatcher) DiscussionURL(post model.Post) string {
	return d.site + "/item?id=" + strconv.Itoa(post.ID)
}

// ExternalURL returns the post's link when it is an absolute http(s) URL.
// Anything else is treated as absent.
func (d *Dispatcher) ExternalURL(post model.Post) (string, bool) {
	raw, ok := post.URL.Get()
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return raw, true
}

// Targets lists what Open will request, in order.
func (d *Dispatcher) Targets(post model.Post) []string {
	out := make([]string, 0, 2)
	if ext, ok := d.ExternalURL(post); ok {
		out = append(out, ext)
	}
	return append(out, d.DiscussionURL(post))
}

// Open requests the external link (if any) and the discussion thread.
// It returns immediately.
func (d *Dispatcher) Open(post model.Post) {
	for _, u := range d.Targets(post) {
		d.fire(u)
	}
}

// OpenTitle requests whatever the title links to: the external URL, or the
// discussion thread for text-only posts.
func (d *Dispatcher) OpenTitle(post model.Post) {
	if ext, ok := d.ExternalURL(post); ok {
		d.fire(ext)
		return
	}
	d.fire(d.DiscussionURL(post))
}

// OpenDiscussion requests only the discussion thread.
func (d *Dispatcher) OpenDiscussion(post model.Post) {
	d.fire(d.DiscussionURL(post))
}

func (d *Dispatcher) fire(u string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.opener.Open(context.Background(), u); err != nil {
			slog.Debug("dispatch: open failed", "url", u, "error", err)
		}
	}()
}

// Wait blocks until every issued request has been handed off. Short-lived
// processes call it before exiting; the UI never does.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
