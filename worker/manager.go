package worker

import (
	"context"
	"log/slog"
	"sync"
)

// Worker runs until ctx is cancelled.
type Worker interface {
	Start(ctx context.Context) error
}

// Manager runs the background loops of a session (feed refresh, clock)
// and stops all of them once ctx ends or any one fails.
type Manager struct {
	workers []Worker
}

func NewManager(ws ...Worker) *Manager {
	return &Manager{workers: ws}
}

// Start blocks until every worker has returned and reports the first failure.
func (m *Manager) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg    sync.WaitGroup
		once  sync.Once
		first error
	)
	for i, w := range m.workers {
		wg.Add(1)
		go func(i int, w Worker) {
			defer wg.Done()
			if err := w.Start(ctx); err != nil {
				slog.Error("worker stopped", "worker", i, "error", err)
				once.Do(func() { first = err })
				cancel()
			}
		}(i, w)
	}
	wg.Wait()
	return first
}
