// internal/syncer/syncer.go
package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github-skill-analyzer/internal/analysis"
	"github-skill-analyzer/internal/database"
	custom_errors "github-skill-analyzer/internal/errors"
	"github-skill-analyzer/internal/model"
)

const (
	// Number of profiles to sync in parallel
	concurrency = 5
)

var loginPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,38})$`)

// ValidateLogin checks that login has the shape of a GitHub user name.
func ValidateLogin(login string) error {
	if !loginPattern.MatchString(login) {
		return &custom_errors.ErrInvalidLogin{Login: login}
	}
	return nil
}

// ProfileFetcher loads a complete profile snapshot from GitHub.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, login string) (*model.Profile, error)
}

// Syncer orchestrates fetching, analysing and storing profiles.
type Syncer struct {
	dbpool       *pgxpool.Pool
	fetcher      ProfileFetcher
	analyzer     *analysis.Analyzer
	logger       *slog.Logger
	profiles     []string
	syncInterval time.Duration
}

// NewSyncer creates a new Syncer instance. A nil dbpool runs the syncer in
// analysis-only mode where nothing is persisted.
func NewSyncer(dbpool *pgxpool.Pool, fetcher ProfileFetcher, analyzer *analysis.Analyzer, logger *slog.Logger, profiles []string, interval time.Duration) (*Syncer, error) {
	for _, login := range profiles {
		if err := ValidateLogin(login); err != nil {
			return nil, err
		}
	}

	return &Syncer{
		dbpool:       dbpool,
		fetcher:      fetcher,
		analyzer:     analyzer,
		logger:       logger,
		profiles:     profiles,
		syncInterval: interval,
	}, nil
}

// Start begins the continuous synchronization process.
func (s *Syncer) Start(ctx context.Context) {
	if len(s.profiles) == 0 {
		s.logger.Info("No profiles to track, periodic sync disabled")
		return
	}

	s.logger.Info("Starting syncer", "interval", s.syncInterval.String(), "concurrency", concurrency, "profiles", len(s.profiles))
	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	s.runSyncCycle(ctx) // Initial sync

	for {
		select {
		case <-ticker.C:
			s.runSyncCycle(ctx)
		case <-ctx.Done():
			s.logger.Info("Syncer shutting down", "reason", ctx.Err())
			return
		}
	}
}

// runSyncCycle performs a synchronization pass for all tracked profiles concurrently.
func (s *Syncer) runSyncCycle(ctx context.Context) {
	s.logger.Info("Starting new sync cycle")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, login := range s.profiles {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			_, err := s.SyncProfile(gctx, login)
			if err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error("Failed to sync profile", "login", login, "error", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("Sync cycle finished with an error", "error", err)
	} else {
		s.logger.Info("Sync cycle finished")
	}
}

// SyncProfile fetches and analyses login and records the result as a new
// snapshot.
func (s *Syncer) SyncProfile(ctx context.Context, login string) (*analysis.Result, error) {
	if err := ValidateLogin(login); err != nil {
		return nil, err
	}

	logger := s.logger.With("login", login)
	logger.Info("Syncing profile")

	profile, err := s.fetcher.FetchProfile(ctx, login)
	if err != nil {
		return nil, err
	}

	result := s.analyzer.Analyze(*profile)
	logger.Info("Profile analysed",
		"experience_level", result.Skills.ExperienceLevel,
		"velocity", result.Activity.VelocityScore,
		"repositories", len(profile.Repositories),
	)

	if s.dbpool == nil {
		return result, nil
	}
	if err := s.storeInTransaction(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// storeInTransaction wraps persistence of a single result in a DB transaction.
func (s *Syncer) storeInTransaction(ctx context.Context, result *analysis.Result) error {
	tx, err := s.dbpool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // Rollback is a no-op if the transaction is already committed.

	qtx := database.New(tx)
	if _, err := s.storeResult(ctx, qtx, result); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// storeResult upserts the profile row and appends a snapshot of result.
func (s *Syncer) storeResult(ctx context.Context, q database.Querier, result *analysis.Result) (database.AnalysisSnapshot, error) {
	dbProfile, err := s.upsertProfile(ctx, q, result.Account, result.AnalyzedAt)
	if err != nil {
		return database.AnalysisSnapshot{}, err
	}

	report, err := json.Marshal(result)
	if err != nil {
		return database.AnalysisSnapshot{}, fmt.Errorf("encode report: %w", err)
	}

	snapshot, err := q.CreateSnapshot(ctx, database.CreateSnapshotParams{
		ProfileID:       dbProfile.ID,
		ExperienceLevel: string(result.Skills.ExperienceLevel),
		VelocityScore:   int32(result.Activity.VelocityScore),
		MarketDemand:    string(result.Forecast.MarketDemand),
		Report:          report,
		AnalyzedAt:      toTimestamptz(result.AnalyzedAt),
	})
	if err != nil {
		return database.AnalysisSnapshot{}, err
	}
	s.logger.Info("Stored analysis snapshot", "login", dbProfile.Login, "snapshot_id", snapshot.ID)
	return snapshot, nil
}

// upsertProfile creates or updates a profile in a single statement, so
// concurrent syncs of the same login converge on one row.
func (s *Syncer) upsertProfile(ctx context.Context, q database.Querier, account model.Account, analyzedAt time.Time) (database.Profile, error) {
	profile, err := q.UpsertProfile(ctx, database.UpsertProfileParams{
		Login:            account.Login,
		Name:             account.Name,
		PublicRepos:      int32(account.PublicRepos),
		Followers:        int32(account.Followers),
		AccountCreatedAt: pgtype.Timestamptz{Time: account.CreatedAt, Valid: true},
		LastAnalyzedAt:   toTimestamptz(analyzedAt),
	})
	if err != nil {
		return database.Profile{}, fmt.Errorf("upsert profile %s: %w", account.Login, err)
	}
	s.logger.Debug("Upserted profile", "login", profile.Login, "profile_id", profile.ID)
	return profile, nil
}

func toTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}
