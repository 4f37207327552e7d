package worker

import (
	"context"
	"log/slog"
	"time"
)

// Reloader is the part of the feed a Refresher drives.
type Reloader interface {
	Reload(ctx context.Context) bool
}

// Refresher reloads a feed on a fixed interval.
type Refresher struct {
	Feed     Reloader
	Interval time.Duration
	// Immediate triggers a reload before the first tick.
	Immediate bool
}

func (w *Refresher) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 5 * time.Minute
	}
	if w.Immediate {
		w.runOnce(ctx)
	}

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Refresher) runOnce(ctx context.Context) {
	if !w.Feed.Reload(ctx) {
		slog.Debug("refresher: fetch already running, skipping tick")
	}
}
