package worker

import (
	"context"
	"time"
)

// Clock calls Tick on a fixed interval so relative timestamps can be
// re-rendered against the current time.
type Clock struct {
	Interval time.Duration
	Tick     func(now time.Time)
}

func (w *Clock) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 30 * time.Second
	}
	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			w.Tick(now)
		}
	}
}
