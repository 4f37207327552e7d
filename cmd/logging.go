package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"hacker-menu/internal/config"
)

// setupLogging installs the default slog logger. Interactive sessions own
// the terminal, so they log to app.log_file or nowhere.
func setupLogging(cfg config.AppConfig, interactive bool) (closeFn func(), err error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.LogLevel))); err != nil {
		return nil, fmt.Errorf("config: app.log_level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn = func() {}
	if interactive {
		w = io.Discard
		if cfg.LogFile != "" {
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, err
			}
			w = f
			closeFn = func() { _ = f.Close() }
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}
