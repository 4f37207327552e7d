// Package tui is the interactive listing: a bubbletea program over the
// presenter, the sort controller and the link dispatcher.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hacker-menu/internal/action"
	"hacker-menu/internal/dispatch"
	"hacker-menu/internal/feed"
	"hacker-menu/internal/presenter"
	"hacker-menu/internal/sortkey"
)

// longPress is how long a button must be held to show row details.
const longPress = 300 * time.Millisecond

// Feed is what the listing needs from the fetch layer.
type Feed interface {
	Load(ctx context.Context) bool
	Reload(ctx context.Context) bool
	Watch() (<-chan feed.Snapshot, func())
}

// TickMsg re-renders relative timestamps against At.
type TickMsg struct {
	At time.Time
}

type snapshotMsg feed.Snapshot

type longPressMsg struct {
	id  int
	seq int
}

type pressState struct {
	id    int
	seq   int
	fired bool
}

// Deps are the collaborators of a Model.
type Deps struct {
	Feed      Feed
	Sorter    *sortkey.Controller
	Presenter *presenter.Presenter
	Links     *dispatch.Dispatcher
	Actions   *action.Table
	Headline  bool
	Now       func() time.Time
}

// Model holds the state of the listing view.
type Model struct {
	ctx       context.Context
	feed      Feed
	updates   <-chan feed.Snapshot
	unwatch   func()
	sorter    *sortkey.Controller
	rows      *presenter.Presenter
	links     *dispatch.Dispatcher
	actions   *action.Table
	clock     func() time.Time
	now       time.Time
	spinner   spinner.Model
	fetching  bool
	err       error
	headline  bool
	hovered   int
	isHovered bool
	press     *pressState
	pressSeq  int
	offset    int
	width     int
	height    int
}

// New creates a listing model. ctx bounds every fetch it starts.
func New(ctx context.Context, d Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(accent)

	now := d.Now
	if now == nil {
		now = time.Now
	}
	updates, unwatch := d.Feed.Watch()
	return Model{
		ctx:      ctx,
		feed:     d.Feed,
		updates:  updates,
		unwatch:  unwatch,
		sorter:   d.Sorter,
		rows:     d.Presenter,
		links:    d.Links,
		actions:  d.Actions,
		clock:    now,
		now:      now(),
		spinner:  s,
		headline: d.Headline,
	}
}

// Close stops watching the feed.
func (m Model) Close() {
	if m.unwatch != nil {
		m.unwatch()
	}
}

// Init starts the first load and the spinner.
func (m Model) Init() tea.Cmd {
	f, ctx := m.feed, m.ctx
	return tea.Batch(
		m.waitForSnapshot(),
		m.spinner.Tick,
		func() tea.Msg {
			f.Load(ctx)
			return nil
		},
	)
}

func (m Model) waitForSnapshot() tea.Cmd {
	ch := m.updates
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(s)
	}
}

// Update handles messages for the listing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ensureFocusVisible()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		m.fetching = msg.Fetching
		if !msg.Fetching {
			m.err = msg.Err
			if msg.Err == nil {
				m.rows.Replace(msg.Posts)
				m.now = m.clock()
				if _, ok := m.rows.Focused(); !ok {
					m.isHovered = false
				}
				m.ensureFocusVisible()
			}
		}
		return m, m.waitForSnapshot()

	case TickMsg:
		m.now = msg.At
		return m, nil

	case longPressMsg:
		if m.press != nil && m.press.seq == msg.seq && m.press.id == msg.id {
			m.press.fired = true
			m.rows.LongPress(msg.id)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a, ok := m.actions.Lookup(msg.String())
	if !ok {
		return m, nil
	}
	if a.IsSort {
		m.sorter.Set(a.Sort)
		m.ensureFocusVisible()
		return m, nil
	}
	switch a.ID {
	case action.Quit:
		return m, tea.Quit
	case action.Reload:
		if !m.fetching && m.feed.Reload(m.ctx) {
			m.fetching = true
		}
	case action.Headline:
		m.headline = !m.headline
	case action.Up:
		m.rows.Move(-1)
		m.ensureFocusVisible()
	case action.Down:
		m.rows.Move(1)
		m.ensureFocusVisible()
	case action.Detail:
		if id, ok := m.rows.Focused(); ok {
			m.rows.Toggle(id)
		}
	case action.Open:
		if p, ok := m.rows.FocusedPost(); ok {
			m.links.Open(p)
		}
	case action.Discussion:
		if p, ok := m.rows.FocusedPost(); ok {
			m.links.OpenDiscussion(p)
		}
	}
	return m, nil
}

// ReloadEnabled reports whether the reload action is currently available.
func (m Model) ReloadEnabled() bool {
	return !m.fetching
}

// Headline reports whether rows are collapsed to their title line.
func (m Model) Headline() bool {
	return m.headline
}

func (m Model) Err() error {
	return m.err
}
