package cmd

import (
	"context"
	"fmt"
	"time"

	"hacker-menu/internal/redisclient"
	"hacker-menu/internal/storage"

	"github.com/spf13/cobra"
)

// redisCmd groups commands that inspect or reset the listing cache.
var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Inspect or reset the Redis listing cache",
}

var clearCmd = &cobra.Command{
	Use:   "clear [list...]",
	Short: "Drop cached listings (default: the configured list)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		lists := args
		if len(lists) == 0 {
			lists = []string{cfg.Sources.HN.List}
		}

		rdb := redisclient.New(cfg.Redis)
		defer closeQuietly(rdb)
		store := storage.NewRedisStore(rdb)

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		for _, l := range lists {
			if err := store.ClearList(ctx, l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", l)
		}
		return nil
	},
}

func init() {
	redisCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(redisCmd)
}
