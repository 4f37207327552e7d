package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hacker-menu/internal/action"
	"hacker-menu/internal/presenter"
	"hacker-menu/internal/sortkey"
	"hacker-menu/internal/tui"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive listing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		closeLog, err := setupLogging(cfg.App, true)
		if err != nil {
			return err
		}
		defer closeLog()

		_, key, err := cfg.Validate()
		if err != nil {
			return err
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		sorter := sortkey.NewController(key)
		rows := presenter.New(sorter)
		defer rows.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return tui.Run(ctx, tui.Deps{
			Feed:      a.feed,
			Sorter:    sorter,
			Presenter: rows,
			Links:     a.links,
			Actions:   action.Default(),
			Headline:  cfg.UI.Headline,
		}, tui.RunOptions{
			RefreshInterval: a.dur.FetchInterval,
			TickInterval:    a.dur.TickInterval,
		})
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
