package roster

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// DefaultFetchTimeout bounds a single remote roster fetch.
const DefaultFetchTimeout = 5 * time.Second

// GitHubSourceOptions configures a GitHubSource.
type GitHubSourceOptions struct {
	// Repo is the repository holding the roster file, as "owner/name".
	Repo string
	// Path is the roster file path within the repository.
	Path string
	// Ref is an optional branch, tag, or commit. Empty uses the default branch.
	Ref string
	// Token is an optional API token. Anonymous access works for public repos.
	Token string
	// BaseURL overrides the API endpoint, for GitHub Enterprise and tests.
	BaseURL string
	// Timeout bounds each fetch. Zero means DefaultFetchTimeout.
	Timeout time.Duration
}

// GitHubSource fetches a newline-delimited roster file from a GitHub
// repository via the contents API.
type GitHubSource struct {
	client  *github.Client
	owner   string
	repo    string
	path    string
	ref     string
	timeout time.Duration
}

// NewGitHubSource creates a GitHubSource from options.
func NewGitHubSource(ctx context.Context, opts GitHubSourceOptions) (*GitHubSource, error) {
	owner, repo, ok := strings.Cut(opts.Repo, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("invalid roster repository %q: want owner/name", opts.Repo)
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("roster repository %q has no file path configured", opts.Repo)
	}

	client := github.NewClient(nil)
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: opts.Token},
		)
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	}

	if opts.BaseURL != "" {
		baseURL, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse API base URL %s: %w", opts.BaseURL, err)
		}
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		client.BaseURL = baseURL
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	return &GitHubSource{
		client:  client,
		owner:   owner,
		repo:    repo,
		path:    opts.Path,
		ref:     opts.Ref,
		timeout: timeout,
	}, nil
}

// Fetch downloads and parses the roster file.
func (s *GitHubSource) Fetch(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	content, _, _, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, s.path,
		&github.RepositoryContentGetOptions{Ref: s.ref})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from %s/%s: %w", s.path, s.owner, s.repo, err)
	}
	if content == nil {
		return nil, fmt.Errorf("%s in %s/%s is a directory, not a roster file", s.path, s.owner, s.repo)
	}

	text, err := content.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}

	return parseNames(text), nil
}
