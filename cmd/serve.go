package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hacker-menu/internal/feed"
	"hacker-menu/internal/redisclient"
	"hacker-menu/worker"

	"github.com/spf13/cobra"
)

// serveCmd keeps the Redis cache warm so interactive sessions start instantly.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Refresh the listing cache in the background",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		closeLog, err := setupLogging(cfg.App, false)
		if err != nil {
			return err
		}
		defer closeLog()

		if !cfg.Cache.Enabled {
			return errors.New("serve needs cache.enabled: there is nowhere to keep the listing")
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		cancelSub := a.feed.Subscribe(func(s feed.Snapshot) {
			switch {
			case s.Fetching:
			case s.Err != nil:
				slog.Error("serve: refresh failed", "list", cfg.Sources.HN.List, "error", s.Err)
			default:
				slog.Info("serve: listing refreshed", "list", cfg.Sources.HN.List, "count", len(s.Posts))
			}
		})
		defer cancelSub()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Without a reachable cache every refresh would be thrown away.
		checkCtx, cancelCheck := context.WithTimeout(ctx, 2*time.Second)
		rtt, err := redisclient.Check(checkCtx, a.rdb)
		cancelCheck()
		if err != nil {
			return err
		}
		slog.Debug("serve: cache reachable", "addr", cfg.Redis.Addr, "rtt", rtt)

		slog.Info("starting refresher", "list", cfg.Sources.HN.List, "interval", a.dur.FetchInterval)
		mgr := worker.NewManager(&worker.Refresher{
			Feed:      a.feed,
			Interval:  a.dur.FetchInterval,
			Immediate: true,
		})
		err = mgr.Start(ctx)
		slog.Info("serve: stopped", "list", cfg.Sources.HN.List)
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
