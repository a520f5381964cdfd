package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github-skill-analyzer/internal/analysis"
	"github-skill-analyzer/internal/report"
	"github-skill-analyzer/internal/syncer"
)

func newAnalyzeCmd(opts *options, newFetcher fetcherFactory) *cobra.Command {
	var compare string

	cmd := &cobra.Command{
		Use:   "analyze <login>",
		Short: "Analyze a GitHub account",
		Example: `  skillreport analyze octocat
  skillreport analyze octocat --compare hubot -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(opts.output)
			if err != nil {
				return err
			}

			logins := []string{args[0]}
			if compare != "" {
				logins = append(logins, compare)
			}
			for _, login := range logins {
				if err := syncer.ValidateLogin(login); err != nil {
					return err
				}
			}

			logger := newLogger(cmd, opts.verbose)
			fetcher := newFetcher(opts, logger)
			analyzer := analysis.NewAnalyzer()

			results := make([]*analysis.Result, len(logins))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, login := range logins {
				g.Go(func() error {
					profile, err := fetcher.FetchProfile(ctx, login)
					if err != nil {
						return fmt.Errorf("fetch %s: %w", login, err)
					}
					results[i] = analyzer.Analyze(*profile)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if compare == "" {
				return report.Render(cmd.OutOrStdout(), results[0], format)
			}
			return report.RenderComparison(cmd.OutOrStdout(), report.Comparison{
				Primary:    results[0],
				Other:      results[1],
				Comparison: analysis.Compare(results[0], results[1]),
			}, format)
		},
	}

	cmd.Flags().StringVar(&compare, "compare", "", "Second login to compare against")
	return cmd
}
