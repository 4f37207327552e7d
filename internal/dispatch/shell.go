package dispatch

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// ShellOpener launches the platform URL handler in the background.
type ShellOpener struct {
	// Command overrides the platform default, e.g. "firefox".
	Command string
}

func (s ShellOpener) Open(_ context.Context, rawURL string) error {
	name, args := s.command(rawURL)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("dispatch: start %s: %w", name, err)
	}
	// reap without blocking the caller
	go func() { _ = cmd.Wait() }()
	return nil
}

func (s ShellOpener) command(rawURL string) (string, []string) {
	if s.Command != "" {
		return s.Command, []string{rawURL}
	}
	switch runtime.GOOS {
	case "darwin":
		// -g keeps the handler in the background, like a menu-bar click
		return "open", []string{"-g", rawURL}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}
