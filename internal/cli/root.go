// Package cli wires the hullo command line interface.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hullo.dev/hullo/internal/actions"
	"hullo.dev/hullo/internal/config"
	hulloerrors "hullo.dev/hullo/internal/errors"
	"hullo.dev/hullo/internal/git"
	"hullo.dev/hullo/internal/output"
	"hullo.dev/hullo/internal/tui"
)

// rootOptions collects the root command flag values.
type rootOptions struct {
	name   string
	random bool
	commit string
	gui    bool
	grid   string
	debug  bool
}

// NewRootCmd creates the hullo root command. Build metadata is injected
// by main via ldflags.
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hullo",
		Short: "Greet someone, then commit and push when asked",
		Long: `Hullo prints greetings, optionally addressed to a random historical
figure, and can stage, commit, and push the repository it runs in.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "name to greet")
	cmd.Flags().BoolVar(&opts.random, "random-historical", false, "greet a random historical figure")
	cmd.Flags().StringVar(&opts.commit, "commit", "", "stage all changes, commit with this message, and push")
	cmd.Flags().BoolVar(&opts.gui, "gui", false, "open the interactive terminal window")
	cmd.Flags().StringVar(&opts.grid, "grid", "", "print a summary of a grid JSON document")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	// Pick up GITHUB_TOKEN and friends from a local .env when present.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	splog, err := output.NewSplogWithConfig(output.GetLogFilePath(cfg.Log.File))
	if err != nil {
		splog = output.NewSplog()
		splog.Warn("File logging disabled: %v", err)
	}
	defer func() { _ = splog.Close() }()

	if opts.debug {
		splog.SetDebug(true)
	}

	ctx := cmd.Context()

	// The operations are mutually exclusive; greeting is the default.
	switch {
	case opts.gui:
		return runGui(ctx, cfg, splog)
	case cmd.Flags().Changed("commit"):
		return runCommit(ctx, opts.commit, splog)
	case opts.grid != "":
		return actions.GridAction(actions.GridOptions{Path: opts.grid, Splog: splog})
	default:
		return actions.GreetAction(ctx, actions.GreetOptions{
			Name:   opts.name,
			Random: opts.random,
			Config: cfg,
			Splog:  splog,
		})
	}
}

// runCommit drives the stage, commit, push sequence. An empty message is
// resolved interactively on a terminal and rejected otherwise.
func runCommit(ctx context.Context, message string, splog *output.Splog) error {
	if err := git.EnsureInstalled(); err != nil {
		splog.Error("Git command not found. Please ensure Git is installed.")
		return err
	}

	repoRoot, err := git.RepoRoot(".")
	if err != nil {
		return err
	}

	if strings.TrimSpace(message) == "" {
		if !tui.IsTTY() {
			return hulloerrors.ErrEmptyCommitMessage
		}
		message, err = actions.PromptCommitMessage()
		if err != nil {
			return err
		}
	}

	err = actions.CommitAndPushAction(ctx, actions.CommitAndPushOptions{
		Message: message,
		Runner:  git.NewCommandRunner(repoRoot),
		Splog:   splog,
	})
	if err != nil {
		splog.Error("Git commit failed: %s", err)
		return err
	}

	return nil
}

// runGui opens the interactive window. There is no git preflight here;
// commit failures surface inside the window when the button is used.
func runGui(ctx context.Context, cfg *config.Config, splog *output.Splog) error {
	if !tui.IsTTY() {
		splog.Error("GUI unavailable: hullo is not attached to a terminal")
		splog.Tip("Run hullo --gui from an interactive terminal")
		return hulloerrors.ErrNoTTY
	}

	figures := actions.LoadRoster(ctx, cfg, splog)

	// Console lines would tear the window; keep them in the log file.
	splog.SetQuiet(true)
	defer splog.SetQuiet(false)

	return tui.RunGUI(tui.GuiOptions{
		Figures: figures,
		Runner:  git.NewCommandRunner(""),
		Splog:   splog,
	})
}
