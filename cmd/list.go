package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"hacker-menu/internal/dispatch"
	"hacker-menu/internal/export"
	"hacker-menu/internal/model"
	"hacker-menu/internal/presenter"
	"hacker-menu/internal/render"
	"hacker-menu/internal/sortkey"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	listSort   string
	listFormat string
	listFresh  bool
)

// listCmd fetches one batch, orders it and prints it.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the current listing once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		closeLog, err := setupLogging(cfg.App, false)
		if err != nil {
			return err
		}
		defer closeLog()

		_, key, err := cfg.Validate()
		if err != nil {
			return err
		}
		if listSort != "" {
			if key, err = sortkey.Parse(listSort); err != nil {
				return err
			}
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		posts, err := a.feed.Fetch(ctx, !listFresh)
		if err != nil {
			return err
		}
		return writeListing(cmd.OutOrStdout(), listFormat, presenter.Present(posts, key), cfg.Sources.HN.List, key, time.Now(), a.links)
	},
}

func writeListing(w io.Writer, format string, posts []model.Post, list string, key sortkey.Key, now time.Time, links *dispatch.Dispatcher) error {
	switch strings.ToLower(format) {
	case "", "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, p := range posts {
			v := render.Row(p, now, links)
			fmt.Fprintf(tw, "%s\t▲ %s\t✉ %s\t%s\t%s\t%s\n", v.Title, v.Score, v.Comments, v.TypeBadge, v.Timestamp, v.TitleURL)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(posts)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(posts)
	case "markdown", "md":
		md, err := export.Markdown(posts, list, key, now, links)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	default:
		return fmt.Errorf("unknown format %q (text, json, yaml, markdown)", format)
	}
}

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort key: rank, score, comments, time, title")
	listCmd.Flags().StringVar(&listFormat, "format", "text", "output format: text, json, yaml, markdown")
	listCmd.Flags().BoolVar(&listFresh, "fresh", false, "skip the cache")
	rootCmd.AddCommand(listCmd)
}
