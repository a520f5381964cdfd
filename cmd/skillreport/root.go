package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github-skill-analyzer/internal/github"
	"github-skill-analyzer/internal/model"
)

// options carries the global flags shared by every subcommand.
type options struct {
	output        string
	token         string
	apiURL        string
	languageDepth int
	verbose       bool
}

type profileFetcher interface {
	FetchProfile(ctx context.Context, login string) (*model.Profile, error)
}

type fetcherFactory func(opts *options, logger *slog.Logger) profileFetcher

func newGitHubFetcher(opts *options, logger *slog.Logger) profileFetcher {
	clientOpts := []github.Option{github.WithLanguageDepth(opts.languageDepth)}
	if opts.apiURL != "" {
		clientOpts = append(clientOpts, github.WithBaseURL(opts.apiURL))
	}
	return github.NewClient(opts.token, logger, clientOpts...)
}

func newRootCmd(newFetcher fetcherFactory) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "skillreport",
		Short: "Analyze the public GitHub footprint of a developer",
		Long: `skillreport builds a skill report from a GitHub account's public
repositories and recent activity.

Commands:
  analyze   Fetch and analyze one account, optionally against another

The report covers languages, frameworks and tools, stack depth, activity,
quality signals, career opportunities, a forecast, a timeline of notable
years and highlighted repositories.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.token == "" {
				opts.token = os.Getenv("GITHUB_TOKEN")
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "markdown", "Output format (json, markdown, yaml)")
	root.PersistentFlags().StringVar(&opts.token, "token", "", "GitHub token (default: $GITHUB_TOKEN)")
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "GitHub API root for Enterprise installations")
	root.PersistentFlags().IntVar(&opts.languageDepth, "language-depth", 20, "Repositories to fetch a full language breakdown for")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log fetch progress to stderr")

	root.AddCommand(newAnalyzeCmd(opts, newFetcher))
	return root
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
