package roster_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hullo.dev/hullo/internal/roster"
	"hullo.dev/hullo/testhelpers"
)

// newTestSource starts a mock contents server for cfg and points a source at it.
func newTestSource(t *testing.T, cfg *testhelpers.MockContentsServerConfig, opts roster.GitHubSourceOptions) *roster.GitHubSource {
	t.Helper()

	server := testhelpers.NewMockContentsServer(t, cfg)
	opts.Repo = cfg.RepoSpec()
	opts.Path = cfg.Path
	opts.BaseURL = server.URL

	source, err := roster.NewGitHubSource(context.Background(), opts)
	require.NoError(t, err)
	return source
}

func TestGitHubSource(t *testing.T) {
	t.Run("fetches and parses the roster file", func(t *testing.T) {
		cfg := testhelpers.NewMockContentsServerConfig("Marie Curie\n\n  Alan Turing\n")
		source := newTestSource(t, cfg, roster.GitHubSourceOptions{})

		names, err := source.Fetch(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"Marie Curie", "Alan Turing"}, names)
	})

	t.Run("forwards the configured ref", func(t *testing.T) {
		var gotRef string
		cfg := testhelpers.NewMockContentsServerConfig("Marie Curie")
		cfg.Intercept = func(_ http.ResponseWriter, r *http.Request) bool {
			gotRef = r.URL.Query().Get("ref")
			return true
		}
		source := newTestSource(t, cfg, roster.GitHubSourceOptions{Ref: "v2"})

		_, err := source.Fetch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "v2", gotRef)
	})

	t.Run("sends the configured token", func(t *testing.T) {
		var gotAuth string
		cfg := testhelpers.NewMockContentsServerConfig("Marie Curie")
		cfg.Intercept = func(_ http.ResponseWriter, r *http.Request) bool {
			gotAuth = r.Header.Get("Authorization")
			return true
		}
		source := newTestSource(t, cfg, roster.GitHubSourceOptions{Token: "sekrit"})

		_, err := source.Fetch(context.Background())
		require.NoError(t, err)
		require.Contains(t, gotAuth, "sekrit")
	})

	t.Run("fails on API errors", func(t *testing.T) {
		cfg := testhelpers.NewMockContentsServerConfig("")
		cfg.StatusCode = http.StatusNotFound
		source := newTestSource(t, cfg, roster.GitHubSourceOptions{})

		_, err := source.Fetch(context.Background())
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to fetch")
	})

	t.Run("enforces its own timeout", func(t *testing.T) {
		cfg := testhelpers.NewMockContentsServerConfig("Marie Curie")
		cfg.Intercept = func(_ http.ResponseWriter, _ *http.Request) bool {
			time.Sleep(200 * time.Millisecond)
			return true
		}
		source := newTestSource(t, cfg, roster.GitHubSourceOptions{Timeout: 10 * time.Millisecond})

		_, err := source.Fetch(context.Background())
		require.Error(t, err)
	})

	t.Run("rejects malformed repository specs", func(t *testing.T) {
		_, err := roster.NewGitHubSource(context.Background(), roster.GitHubSourceOptions{
			Repo: "not-owner-slash-name",
			Path: "figures.txt",
		})
		require.Error(t, err)

		_, err = roster.NewGitHubSource(context.Background(), roster.GitHubSourceOptions{
			Repo: "history/figures",
		})
		require.Error(t, err)
	})
}
