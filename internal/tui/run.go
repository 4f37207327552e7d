package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hacker-menu/worker"
)

// RunOptions controls the background workers of an interactive session.
type RunOptions struct {
	RefreshInterval time.Duration
	TickInterval    time.Duration
}

// Run shows the listing until the user quits or ctx is cancelled.
func Run(ctx context.Context, d Deps, opts RunOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(ctx, d)
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	mgr := worker.NewManager(
		&worker.Refresher{Feed: d.Feed, Interval: opts.RefreshInterval},
		&worker.Clock{Interval: opts.TickInterval, Tick: func(now time.Time) {
			p.Send(TickMsg{At: now})
		}},
	)
	workersDone := make(chan error, 1)
	go func() { workersDone <- mgr.Start(ctx) }()

	_, err := p.Run()
	cancel()
	if werr := <-workersDone; werr != nil {
		slog.Error("tui: worker stopped", "error", werr)
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
