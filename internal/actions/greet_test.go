package actions_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hullo.dev/hullo/internal/actions"
	"hullo.dev/hullo/internal/config"
	"hullo.dev/hullo/internal/output"
	"hullo.dev/hullo/internal/roster"
	"hullo.dev/hullo/testhelpers"
)

// runGreet drives GreetAction and returns the console output.
func runGreet(t *testing.T, opts actions.GreetOptions) string {
	t.Helper()

	var buf bytes.Buffer
	opts.Splog = output.NewSplogWithWriter(&buf)
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	require.NoError(t, actions.GreetAction(context.Background(), opts))
	return buf.String()
}

func TestGreetAction(t *testing.T) {
	t.Run("greets the world by default", func(t *testing.T) {
		out := runGreet(t, actions.GreetOptions{})
		require.Contains(t, out, "Hello, World!")
	})

	t.Run("greets the given name", func(t *testing.T) {
		out := runGreet(t, actions.GreetOptions{Name: "Ada Lovelace"})
		require.Contains(t, out, "Hello, Ada Lovelace!")
	})

	t.Run("greets a figure from the configured roster file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "figures.txt")
		require.NoError(t, os.WriteFile(path, []byte("Marie Curie\n"), 0o600))

		cfg := config.DefaultConfig()
		cfg.Roster.File = path

		out := runGreet(t, actions.GreetOptions{Random: true, Config: cfg})
		require.Contains(t, out, "Hello, Marie Curie!")
	})

	t.Run("falls back to the built-in figures", func(t *testing.T) {
		out := runGreet(t, actions.GreetOptions{Random: true})

		var found bool
		for _, figure := range roster.DefaultFigures() {
			if strings.Contains(out, "Hello, "+figure+"!") {
				found = true
				break
			}
		}
		require.True(t, found, "expected a built-in figure greeting, got %q", out)
	})

	t.Run("uses the remote roster when configured", func(t *testing.T) {
		mock := testhelpers.NewMockContentsServerConfig("Grace Hopper\n")
		server := testhelpers.NewMockContentsServer(t, mock)

		cfg := config.DefaultConfig()
		cfg.Roster.Remote.Repo = mock.RepoSpec()
		cfg.Roster.Remote.Path = mock.Path
		cfg.Roster.Remote.BaseURL = server.URL

		out := runGreet(t, actions.GreetOptions{Random: true, Config: cfg})
		require.Contains(t, out, "Hello, Grace Hopper!")
	})

	t.Run("warns and falls back when the remote source is misconfigured", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Roster.Remote.Repo = "missing-slash"

		out := runGreet(t, actions.GreetOptions{Random: true, Config: cfg})
		require.Contains(t, out, "Ignoring remote roster source")
		require.Contains(t, out, "Hello, ")
	})
}
