package actions

import (
	"context"
	"os"

	"hullo.dev/hullo/internal/config"
	"hullo.dev/hullo/internal/greeting"
	"hullo.dev/hullo/internal/output"
	"hullo.dev/hullo/internal/roster"
)

// GreetOptions are options for the greet command
type GreetOptions struct {
	Name   string
	Random bool
	Config *config.Config
	Splog  *output.Splog
}

// GreetAction prints a greeting. With Random set the greeting goes to a
// historical figure drawn from the configured roster instead of Name.
func GreetAction(ctx context.Context, opts GreetOptions) error {
	if opts.Random {
		figures := LoadRoster(ctx, opts.Config, opts.Splog)
		opts.Splog.Info("%s", greeting.GreetRandomFigure(figures))
		return nil
	}

	opts.Splog.Info("%s", greeting.Greet(opts.Name))
	return nil
}

// LoadRoster resolves the historical figure roster described by the config,
// falling through remote source, local file, and built-in defaults.
func LoadRoster(ctx context.Context, cfg *config.Config, splog *output.Splog) *roster.Roster {
	return roster.Load(ctx, roster.LoadOptions{
		Source: remoteSource(ctx, cfg, splog),
		File:   cfg.Roster.File,
		Filter: cfg.Filter(),
		Max:    cfg.Roster.Max,
		Splog:  splog,
	})
}

// remoteSource builds the GitHub roster source when one is configured.
func remoteSource(ctx context.Context, cfg *config.Config, splog *output.Splog) roster.Source {
	remote := cfg.Roster.Remote
	if remote.Repo == "" {
		return nil
	}

	source, err := roster.NewGitHubSource(ctx, roster.GitHubSourceOptions{
		Repo:    remote.Repo,
		Path:    remote.Path,
		Ref:     remote.Ref,
		Token:   os.Getenv("GITHUB_TOKEN"),
		BaseURL: remote.BaseURL,
		Timeout: remote.Timeout(),
	})
	if err != nil {
		splog.Warn("Ignoring remote roster source: %v", err)
		return nil
	}
	return source
}
