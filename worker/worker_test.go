package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hacker-menu/internal/feed"
	"hacker-menu/internal/model"
)

type countingFeed struct {
	n atomic.Int32
}

func (c *countingFeed) Reload(context.Context) bool {
	c.n.Add(1)
	return true
}

func TestRefresherReloadsOnInterval(t *testing.T) {
	feed := &countingFeed{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- (&Refresher{Feed: feed, Interval: 10 * time.Millisecond, Immediate: true}).Start(ctx)
	}()

	assert.Eventually(t, func() bool { return feed.n.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

func TestClockTicks(t *testing.T) {
	var ticks atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := &Clock{Interval: 5 * time.Millisecond, Tick: func(time.Time) { ticks.Add(1) }}
	go func() { _ = c.Start(ctx) }()

	assert.Eventually(t, func() bool { return ticks.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
}

type failingWorker struct{}

func (failingWorker) Start(context.Context) error { return errors.New("bad worker") }

func TestManagerStopsSiblingsOnWorkerError(t *testing.T) {
	mgr := NewManager(failingWorker{}, &Clock{Interval: time.Hour, Tick: func(time.Time) {}})

	done := make(chan error, 1)
	go func() { done <- mgr.Start(context.Background()) }()
	select {
	case err := <-done:
		assert.EqualError(t, err, "bad worker")
	case <-time.After(2 * time.Second):
		t.Fatal("manager kept running after a worker failed")
	}
}

func TestManagerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	mgr := NewManager(&Clock{Interval: time.Hour, Tick: func(time.Time) {}}, &Refresher{Feed: &countingFeed{}, Interval: time.Hour})
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	assert.NoError(t, mgr.Start(ctx))
}

type storySource struct {
	n atomic.Int32
}

func (s *storySource) Stories(_ context.Context, _ string, _ int) ([]model.Post, error) {
	n := int(s.n.Add(1))
	return []model.Post{{ID: n}}, nil
}

func TestRefresherDrivesLiveFeed(t *testing.T) {
	src := &storySource{}
	f := feed.New(src, feed.Options{List: "top", Limit: 5})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- (&Refresher{Feed: f, Interval: 10 * time.Millisecond, Immediate: true}).Start(ctx)
	}()

	assert.Eventually(t, func() bool { return src.n.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("refresher did not stop after cancel")
	}
	assert.Eventually(t, func() bool { return !f.IsFetching() }, 2*time.Second, 5*time.Millisecond)
	assert.Len(t, f.Posts(), 1)
}
