package github

import (
	"context"
	"sort"

	"github.com/google/go-github/v62/github"
	"golang.org/x/sync/errgroup"

	"github-skill-analyzer/internal/model"
)

// FetchProfile gathers everything the analysis needs for login: the account,
// its repositories with language breakdowns for the most relevant ones, and
// contribution stats from the recent event feed.
func (c *Client) FetchProfile(ctx context.Context, login string) (*model.Profile, error) {
	var (
		account *model.Account
		repos   []model.Repository
		events  []*github.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := c.GetAccount(gctx, login)
		account = a
		return err
	})
	g.Go(func() error {
		r, err := c.ListRepositories(gctx, login)
		repos = r
		return err
	})
	g.Go(func() error {
		ev, err := c.ListRecentEvents(gctx, login)
		if err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			c.logger.Warn("Failed to fetch events, continuing without contributions", "login", login, "error", err)
			return nil
		}
		events = ev
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := c.attachLanguages(ctx, login, repos); err != nil {
		return nil, err
	}

	c.logger.Info("Fetched profile", "login", login, "repositories", len(repos), "events", len(events))

	return &model.Profile{
		Account:       *account,
		Repositories:  repos,
		Contributions: DeriveContributionStats(events),
	}, nil
}

// attachLanguages fills the language byte map of the top repositories by
// stars, then recency. Failed fetches leave the map empty so the primary
// language stands in for it.
func (c *Client) attachLanguages(ctx context.Context, owner string, repos []model.Repository) error {
	order := make([]int, len(repos))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := repos[order[a]], repos[order[b]]
		if ra.Stars != rb.Stars {
			return ra.Stars > rb.Stars
		}
		return ra.UpdatedAt.After(rb.UpdatedAt)
	})
	if len(order) > c.languageDepth {
		order = order[:c.languageDepth]
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for _, idx := range order {
		g.Go(func() error {
			langs, err := c.ListLanguages(gctx, owner, repos[idx].Name)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				c.logger.Warn("Failed to fetch languages", "owner", owner, "repo", repos[idx].Name, "error", err)
				return nil
			}
			repos[idx].Languages = langs
			return nil
		})
	}
	return g.Wait()
}
