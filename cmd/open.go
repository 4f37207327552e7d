package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var openDiscussion bool

// openCmd opens a post's link and discussion thread by id.
var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a post's link and its discussion thread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid post id %q", args[0])
		}
		cfg := GetConfig()
		closeLog, err := setupLogging(cfg.App, false)
		if err != nil {
			return err
		}
		defer closeLog()

		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		post, ok, err := a.cachedItem(ctx, id)
		if err != nil || !ok {
			if post, err = a.hn.Item(ctx, id); err != nil {
				return err
			}
		}
		if openDiscussion {
			a.links.OpenDiscussion(post)
		} else {
			a.links.Open(post)
		}
		// launches are handed off asynchronously; let them start before exit
		a.links.Wait()
		for _, u := range a.links.Targets(post) {
			if openDiscussion && u != a.links.DiscussionURL(post) {
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
		}
		return nil
	},
}

func init() {
	openCmd.Flags().BoolVar(&openDiscussion, "discussion", false, "open only the discussion thread")
	rootCmd.AddCommand(openCmd)
}
