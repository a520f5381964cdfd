// internal/github/client.go
package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	apperrors "github-skill-analyzer/internal/errors"
	"github-skill-analyzer/internal/model"
)

const (
	maxRetries       = 3
	maxRateLimitWait = 2 * time.Minute
	rateLimitSlack   = 250 * time.Millisecond
	perPage          = 100

	defaultRequestsPerSecond = 10
	defaultLanguageDepth     = 20
	defaultConcurrency       = 5
)

// Client is a wrapper around the go-github client that throttles, retries
// and de-duplicates requests.
type Client struct {
	gh            *github.Client
	limiter       *rate.Limiter
	group         singleflight.Group
	backoff       time.Duration
	languageDepth int
	concurrency   int
	logger        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithRateLimit caps outgoing requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	}
}

// WithLanguageDepth sets how many repositories get a full language
// breakdown in FetchProfile.
func WithLanguageDepth(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.languageDepth = n
		}
	}
}

// WithConcurrency bounds parallel language fetches.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithBackoff sets the base delay between retries of server errors.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.backoff = d
	}
}

// WithBaseURL points the client at a GitHub Enterprise API root.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		u, err := url.Parse(strings.TrimSuffix(raw, "/") + "/")
		if err != nil {
			c.logger.Warn("Ignoring invalid GitHub API URL", "url", raw, "error", err)
			return
		}
		c.gh.BaseURL = u
	}
}

// NewClient creates and configures a new Client instance.
// A non-empty token is used to create an authenticated http.Client;
// otherwise requests are anonymous and subject to the lower public quota.
func NewClient(token string, logger *slog.Logger, opts ...Option) *Client {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		hc = oauth2.NewClient(context.Background(), ts)
	}

	c := &Client{
		gh:            github.NewClient(hc),
		limiter:       rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultRequestsPerSecond),
		backoff:       500 * time.Millisecond,
		languageDepth: defaultLanguageDepth,
		concurrency:   defaultConcurrency,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAccount fetches the public account of login.
func (c *Client) GetAccount(ctx context.Context, login string) (*model.Account, error) {
	user, err := fetch(ctx, c, "user:"+login, func(ctx context.Context) (*github.User, *github.Response, error) {
		return c.gh.Users.Get(ctx, login)
	})
	if err != nil {
		return nil, notFound(err, login)
	}
	return toInternalAccount(user), nil
}

// ListRepositories fetches every repository owned by login, most recently
// updated first. It handles API pagination transparently.
func (c *Client) ListRepositories(ctx context.Context, login string) ([]model.Repository, error) {
	var all []model.Repository

	opts := &github.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		c.logger.Debug("Fetching repositories page", "login", login, "page", opts.Page)

		page, err := fetch(ctx, c, pageKey("repos:"+login, opts.Page), func(ctx context.Context) (repoPage, *github.Response, error) {
			repos, resp, err := c.gh.Repositories.ListByUser(ctx, login, opts)
			return repoPage{repos: repos, resp: resp}, resp, err
		})
		if err != nil {
			return nil, notFound(err, login)
		}

		for _, r := range page.repos {
			all = append(all, toInternalRepository(r))
		}

		if page.resp == nil || page.resp.NextPage == 0 {
			break
		}
		opts.Page = page.resp.NextPage
	}

	return all, nil
}

// ListLanguages fetches the language byte counts of a repository.
func (c *Client) ListLanguages(ctx context.Context, owner, repo string) (map[string]int64, error) {
	langs, err := fetch(ctx, c, "languages:"+owner+"/"+repo, func(ctx context.Context) (map[string]int, *github.Response, error) {
		return c.gh.Repositories.ListLanguages(ctx, owner, repo)
	})
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(langs))
	for name, bytes := range langs {
		out[name] = int64(bytes)
	}
	return out, nil
}

// ListRecentEvents fetches the most recent page of public events performed by
// login.
func (c *Client) ListRecentEvents(ctx context.Context, login string) ([]*github.Event, error) {
	return fetch(ctx, c, "events:"+login, func(ctx context.Context) ([]*github.Event, *github.Response, error) {
		return c.gh.Activity.ListEventsPerformedByUser(ctx, login, true, &github.ListOptions{PerPage: perPage})
	})
}

type repoPage struct {
	repos []*github.Repository
	resp  *github.Response
}

func pageKey(prefix string, page int) string {
	if page == 0 {
		return prefix
	}
	return prefix + ":" + strconv.Itoa(page)
}

// fetch runs call at most once per key among concurrent callers, with
// throttling and retries applied to the shared execution.
func fetch[T any](ctx context.Context, c *Client, key string, call func(context.Context) (T, *github.Response, error)) (T, error) {
	v, err, shared := c.group.Do(key, func() (any, error) {
		return withRetry(ctx, c, key, call)
	})
	if shared {
		c.logger.Debug("Shared in-flight GitHub request", "key", key)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func withRetry[T any](ctx context.Context, c *Client, key string, call func(context.Context) (T, *github.Response, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return zero, err
		}

		v, _, err := call(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		wait, retryable := c.retryDelay(err, attempt)
		if !retryable || attempt == maxRetries {
			break
		}

		c.logger.Warn("Retrying GitHub request", "key", key, "attempt", attempt, "wait", wait, "error", err)
		if err := sleep(ctx, wait); err != nil {
			return zero, err
		}
	}
	return zero, lastErr
}

// retryDelay decides whether err is worth another attempt and how long to
// wait first. Rate limit errors wait for the advertised reset.
func (c *Client) retryDelay(err error, attempt int) (time.Duration, bool) {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return min(time.Until(rateErr.Rate.Reset.Time)+rateLimitSlack, maxRateLimitWait), true
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		if d := abuseErr.GetRetryAfter(); d > 0 {
			return min(d+rateLimitSlack, maxRateLimitWait), true
		}
		return c.backoff, true
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode >= http.StatusInternalServerError {
		return c.backoff * time.Duration(1<<(attempt-1)), true
	}
	return 0, false
}

// notFound maps a GitHub 404 to ErrProfileNotFound.
func notFound(err error, login string) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
		return &apperrors.ErrProfileNotFound{Login: login}
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// toInternalAccount translates a github.User object to our internal model.Account.
func toInternalAccount(u *github.User) *model.Account {
	return &model.Account{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		CreatedAt:   u.GetCreatedAt().Time,
	}
}

// toInternalRepository translates a github.Repository object to our internal model.Repository.
func toInternalRepository(r *github.Repository) model.Repository {
	return model.Repository{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		CreatedAt:   r.GetCreatedAt().Time,
		UpdatedAt:   r.GetUpdatedAt().Time,
		Topics:      r.Topics,
		URL:         r.GetHTMLURL(),
	}
}
