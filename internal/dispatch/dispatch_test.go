package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hacker-menu/internal/model"
)

type recordingOpener struct {
	mu   sync.Mutex
	urls []string
	fail map[string]bool
}

func (r *recordingOpener) Open(_ context.Context, u string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, u)
	if r.fail[u] {
		return errors.New("handler declined")
	}
	return nil
}

func (r *recordingOpener) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

func TestOpenIssuesExternalAndDiscussion(t *testing.T) {
	rec := &recordingOpener{}
	d := New("", rec)

	d.Open(model.Post{ID: 42, URL: model.Some("https://example.com/a")})
	d.Wait()

	assert.ElementsMatch(t, []string{
		"https://example.com/a",
		"https://news.ycombinator.com/item?id=42",
	}, rec.calls())
}

func TestOpenIsIndependentPerTarget(t *testing.T) {
	rec := &recordingOpener{fail: map[string]bool{"https://example.com/a": true}}
	d := New("https://news.ycombinator.com/", rec)

	d.Open(model.Post{ID: 7, URL: model.Some("https://example.com/a")})
	d.Wait()

	assert.Contains(t, rec.calls(), "https://news.ycombinator.com/item?id=7")
}

func TestOpenIsNeverDeduplicated(t *testing.T) {
	rec := &recordingOpener{}
	d := New("", rec)
	p := model.Post{ID: 1}

	d.Open(p)
	d.Open(p)
	d.Wait()

	assert.Equal(t, []string{
		"https://news.ycombinator.com/item?id=1",
		"https://news.ycombinator.com/item?id=1",
	}, rec.calls())
}

func TestTargets(t *testing.T) {
	d := New("https://hn.example", nil)
	tests := []struct {
		name string
		url  model.Opt[string]
		want []string
	}{
		{"absent", model.None[string](), []string{"https://hn.example/item?id=3"}},
		{"valid", model.Some("http://x.org/p?q=1"), []string{"http://x.org/p?q=1", "https://hn.example/item?id=3"}},
		{"relative", model.Some("/just/a/path"), []string{"https://hn.example/item?id=3"}},
		{"garbage", model.Some("ht tp://%zz"), []string{"https://hn.example/item?id=3"}},
		{"other scheme", model.Some("javascript:alert(1)"), []string{"https://hn.example/item?id=3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Targets(model.Post{ID: 3, URL: tt.url})
			require.Equal(t, tt.want, got)
		})
	}
}

func TestOpenDiscussion(t *testing.T) {
	rec := &recordingOpener{}
	d := New("", rec)
	d.OpenDiscussion(model.Post{ID: 9, URL: model.Some("https://example.com")})
	d.Wait()
	assert.Equal(t, []string{"https://news.ycombinator.com/item?id=9"}, rec.calls())
}

func TestShellOpenerCommandOverride(t *testing.T) {
	name, args := ShellOpener{Command: "firefox"}.command("https://a.b")
	assert.Equal(t, "firefox", name)
	assert.Equal(t, []string{"https://a.b"}, args)
}

func TestOpenTitle(t *testing.T) {
	rec := &recordingOpener{}
	d := New("", rec)
	d.OpenTitle(model.Post{ID: 2, URL: model.Some("https://example.com/x")})
	d.OpenTitle(model.Post{ID: 3})
	d.Wait()
	assert.ElementsMatch(t, []string{
		"https://example.com/x",
		"https://news.ycombinator.com/item?id=3",
	}, rec.calls())
}
