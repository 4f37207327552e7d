package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hacker-menu/internal/action"
	"hacker-menu/internal/dispatch"
	"hacker-menu/internal/feed"
	"hacker-menu/internal/model"
	"hacker-menu/internal/presenter"
	"hacker-menu/internal/sortkey"
)

type fakeFeed struct {
	ch      chan feed.Snapshot
	reloads int
}

func (f *fakeFeed) Load(context.Context) bool { return true }

func (f *fakeFeed) Reload(context.Context) bool {
	f.reloads++
	return true
}

func (f *fakeFeed) Watch() (<-chan feed.Snapshot, func()) {
	return f.ch, func() {}
}

type recorder struct {
	mu   sync.Mutex
	urls []string
}

func (r *recorder) Open(_ context.Context, u string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, u)
	return nil
}

func (r *recorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

type harness struct {
	m      Model
	feed   *fakeFeed
	sorter *sortkey.Controller
	rows   *presenter.Presenter
	links  *dispatch.Dispatcher
	opened *recorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		feed:   &fakeFeed{ch: make(chan feed.Snapshot, 1)},
		sorter: sortkey.NewController(sortkey.Rank),
		opened: &recorder{},
	}
	h.rows = presenter.New(h.sorter)
	h.links = dispatch.New("", h.opened)
	h.m = New(context.Background(), Deps{
		Feed:      h.feed,
		Sorter:    h.sorter,
		Presenter: h.rows,
		Links:     h.links,
		Actions:   action.Default(),
		Now:       func() time.Time { return time.Unix(10_000, 0) },
	})
	t.Cleanup(h.rows.Close)
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) key(s string) {
	switch s {
	case " ":
		h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	case "enter":
		h.send(tea.KeyMsg{Type: tea.KeyEnter})
	default:
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func batch() []model.Post {
	return []model.Post{
		{ID: 1, Title: model.Some("low"), Score: model.Some(5), URL: model.Some("https://one.example"), Type: "story", Time: 9_000},
		{ID: 2, Title: model.Some("high"), Score: model.Some(50), Type: "job", Time: 9_500},
	}
}

func TestSnapshotReplacesRows(t *testing.T) {
	h := newHarness(t)
	h.send(snapshotMsg{Fetching: true})
	assert.False(t, h.m.ReloadEnabled())

	h.send(snapshotMsg{Posts: batch()})
	assert.True(t, h.m.ReloadEnabled())
	require.Len(t, h.rows.Rows(), 2)
	assert.Contains(t, h.m.View(), "high")
}

func TestSortShortcutReorders(t *testing.T) {
	h := newHarness(t)
	h.send(snapshotMsg{Posts: batch()})

	h.key("2")
	assert.Equal(t, sortkey.Score, h.sorter.Current())
	assert.Equal(t, 2, h.rows.Rows()[0].ID)
	assert.Contains(t, h.m.View(), "✓2 Score")
}

func TestReloadDisabledWhileFetching(t *testing.T) {
	h := newHarness(t)
	h.key("r")
	assert.Equal(t, 1, h.feed.reloads)
	assert.False(t, h.m.ReloadEnabled())

	h.key("r")
	assert.Equal(t, 1, h.feed.reloads, "reload is ignored while fetching")

	h.send(snapshotMsg{Posts: batch()})
	h.key("r")
	assert.Equal(t, 2, h.feed.reloads)
}

func TestDetailToggleAndOpen(t *testing.T) {
	h := newHarness(t)
	h.send(snapshotMsg{Posts: batch()})

	h.key("j")
	id, ok := h.rows.Focused()
	require.True(t, ok)
	assert.Equal(t, 1, id)

	h.key(" ")
	assert.True(t, h.rows.State(1).Detail)
	assert.Contains(t, h.m.View(), "STORY | https://news.ycombinator.com/item?id=1")
	h.key(" ")
	assert.False(t, h.rows.State(1).Detail)

	h.key("enter")
	h.links.Wait()
	assert.ElementsMatch(t, []string{"https://one.example", "https://news.ycombinator.com/item?id=1"}, h.opened.calls())
}

func TestHeadlineHidesInfoLine(t *testing.T) {
	h := newHarness(t)
	h.send(snapshotMsg{Posts: batch()})
	assert.Contains(t, h.m.View(), "▲ 50")

	h.key("h")
	assert.True(t, h.m.Headline())
	assert.NotContains(t, h.m.View(), "▲ 50")
}

func TestMouseHoverLongPressAndLeave(t *testing.T) {
	h := newHarness(t)
	h.send(snapshotMsg{Posts: batch()})
	top := len(h.m.header())

	h.send(tea.MouseMsg{X: 5, Y: top, Action: tea.MouseActionMotion})
	assert.True(t, h.rows.State(1).Hovering)

	cmd := h.send(tea.MouseMsg{X: 5, Y: top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	h.send(longPressMsg{id: 1, seq: h.m.pressSeq})
	assert.True(t, h.rows.State(1).Detail)

	h.send(tea.MouseMsg{X: 5, Y: top, Action: tea.MouseActionRelease})
	h.links.Wait()
	assert.Empty(t, h.opened.calls(), "a long press is not a click")

	// the second row starts below the first row's info line and detail box
	h.send(tea.MouseMsg{X: 5, Y: top + len(h.m.renderRow(batch()[0])), Action: tea.MouseActionMotion})
	assert.False(t, h.rows.State(1).Detail)
	assert.False(t, h.rows.State(1).Hovering)
	assert.True(t, h.rows.State(2).Hovering)
}

func TestMouseClicks(t *testing.T) {
	h := newHarness(t)
	h.send(snapshotMsg{Posts: batch()})
	top := len(h.m.header())
	click := func(x, y int) {
		h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease})
	}

	click(0, top)
	h.links.Wait()
	assert.Len(t, h.opened.calls(), 2, "twin link opens both")

	click(6, top+2) // title of the text-only job post
	click(6, top+3) // its info line
	h.links.Wait()
	assert.Equal(t, []string{
		"https://news.ycombinator.com/item?id=2",
		"https://news.ycombinator.com/item?id=2",
	}, h.opened.calls()[2:])
}

func TestStaleLongPressIgnored(t *testing.T) {
	h := newHarness(t)
	h.send(snapshotMsg{Posts: batch()})
	top := len(h.m.header())

	h.send(tea.MouseMsg{X: 5, Y: top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	seq := h.m.pressSeq
	h.send(tea.MouseMsg{X: 5, Y: top, Action: tea.MouseActionRelease})
	h.send(longPressMsg{id: 1, seq: seq})
	assert.False(t, h.rows.State(1).Detail)
}

func TestFetchErrorShown(t *testing.T) {
	h := newHarness(t)
	h.send(snapshotMsg{Posts: batch()})
	h.send(snapshotMsg{Posts: batch(), Err: assert.AnError})
	assert.ErrorIs(t, h.m.Err(), assert.AnError)
	assert.Contains(t, h.m.View(), "fetch failed")
	assert.Len(t, h.rows.Rows(), 2)
}

func TestTickUpdatesTimestamps(t *testing.T) {
	h := newHarness(t)
	h.send(snapshotMsg{Posts: batch()})
	assert.Contains(t, h.m.View(), "16 minutes ago")

	h.send(TickMsg{At: time.Unix(9_000+3*3600, 0)})
	assert.Contains(t, h.m.View(), "3 hours ago")
}
