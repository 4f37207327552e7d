package cmd

import (
	"context"
	"fmt"
	"time"

	"hacker-menu/internal/redisclient"

	"github.com/spf13/cobra"
)

// pingCmd checks that the cache server answers before enabling cache.enabled.
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the cache server and print its round-trip time",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer closeQuietly(rdb)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		defer cancel()
		rtt, err := redisclient.Check(ctx, rdb)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "PONG %s in %s\n", cfg.Redis.Addr, rtt.Round(time.Microsecond))
		return nil
	},
}

func init() {
	redisCmd.AddCommand(pingCmd)
}
