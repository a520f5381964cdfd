// internal/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github-skill-analyzer/internal/analysis"
	"github-skill-analyzer/internal/database"
	custom_errors "github-skill-analyzer/internal/errors"
	"github-skill-analyzer/internal/syncer"
)

// ProfileSyncer analyses a profile on demand and records the result.
type ProfileSyncer interface {
	SyncProfile(ctx context.Context, login string) (*analysis.Result, error)
}

// Handler is the container for API dependencies.
type Handler struct {
	db     database.Querier
	syncer ProfileSyncer
	logger *slog.Logger
}

// ComparisonResponse is the body of an analysis request with a compare
// target.
type ComparisonResponse struct {
	Primary    *analysis.Result    `json:"primary"`
	Other      *analysis.Result    `json:"other"`
	Comparison analysis.Comparison `json:"comparison"`
}

// SnapshotResponse is a stored analysis as served by the API.
type SnapshotResponse struct {
	ID              int64           `json:"id"`
	Login           string          `json:"login"`
	ExperienceLevel string          `json:"experienceLevel"`
	VelocityScore   int32           `json:"velocityScore"`
	MarketDemand    string          `json:"marketDemand"`
	AnalyzedAt      time.Time       `json:"analyzedAt"`
	Report          json.RawMessage `json:"report,omitempty"`
}

// NewRouter creates and configures a new chi router with all API routes.
func NewRouter(db database.Querier, ps ProfileSyncer, logger *slog.Logger) http.Handler {
	h := &Handler{
		db:     db,
		syncer: ps,
		logger: logger,
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", h.healthCheck)
	r.Route("/v1/profiles/{login}", func(r chi.Router) {
		r.Get("/analysis", h.getAnalysis)
		r.Get("/snapshots", h.listSnapshots)
		r.Get("/snapshots/latest", h.getLatestSnapshot)
	})

	return r
}

// healthCheck is a simple health endpoint.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getAnalysis runs a fresh analysis of a profile, optionally side by side
// with a second one.
// GET /v1/profiles/{login}/analysis?compare=other
func (h *Handler) getAnalysis(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")
	other := r.URL.Query().Get("compare")

	if other == "" {
		result, err := h.syncer.SyncProfile(r.Context(), login)
		if err != nil {
			h.respondWithFailure(w, "Failed to analyse profile", err)
			return
		}
		respondWithJSON(w, http.StatusOK, result)
		return
	}

	if strings.EqualFold(login, other) {
		result, err := h.syncer.SyncProfile(r.Context(), login)
		if err != nil {
			h.respondWithFailure(w, "Failed to compare profiles", err)
			return
		}
		respondWithJSON(w, http.StatusOK, ComparisonResponse{
			Primary:    result,
			Other:      result,
			Comparison: analysis.Compare(result, result),
		})
		return
	}

	var primary, second *analysis.Result
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		res, err := h.syncer.SyncProfile(gctx, login)
		primary = res
		return err
	})
	g.Go(func() error {
		res, err := h.syncer.SyncProfile(gctx, other)
		second = res
		return err
	})
	if err := g.Wait(); err != nil {
		h.respondWithFailure(w, "Failed to compare profiles", err)
		return
	}

	respondWithJSON(w, http.StatusOK, ComparisonResponse{
		Primary:    primary,
		Other:      second,
		Comparison: analysis.Compare(primary, second),
	})
}

// listSnapshots returns the stored analyses of a profile, newest first.
// GET /v1/profiles/{login}/snapshots?limit=N
func (h *Handler) listSnapshots(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")

	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		limitStr = "10" // Default limit
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 100 {
		respondWithError(w, http.StatusBadRequest, "Invalid 'limit' parameter. Must be an integer between 1 and 100.")
		return
	}

	profile, ok := h.lookupProfile(w, r, login)
	if !ok {
		return
	}

	snapshots, err := h.db.ListSnapshotsByProfile(r.Context(), database.ListSnapshotsByProfileParams{
		ProfileID: profile.ID,
		Limit:     int32(limit),
	})
	if err != nil {
		h.logger.Error("Failed to list snapshots", "login", login, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]SnapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, toSnapshotResponse(profile.Login, s, false))
	}
	respondWithJSON(w, http.StatusOK, out)
}

// getLatestSnapshot returns the most recent stored analysis with its full
// report.
// GET /v1/profiles/{login}/snapshots/latest
func (h *Handler) getLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")

	profile, ok := h.lookupProfile(w, r, login)
	if !ok {
		return
	}

	snapshot, err := h.db.GetLatestSnapshot(r.Context(), profile.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondWithError(w, http.StatusNotFound, "No snapshots recorded for profile")
			return
		}
		h.logger.Error("Failed to get latest snapshot", "login", login, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, toSnapshotResponse(profile.Login, snapshot, true))
}

// lookupProfile validates login and loads its stored profile, writing the
// error response itself when that fails.
func (h *Handler) lookupProfile(w http.ResponseWriter, r *http.Request, login string) (database.Profile, bool) {
	if err := syncer.ValidateLogin(login); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return database.Profile{}, false
	}

	profile, err := h.db.GetProfileByLogin(r.Context(), login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondWithError(w, http.StatusNotFound, "Profile not found")
			return database.Profile{}, false
		}
		h.logger.Error("Failed to get profile", "login", login, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return database.Profile{}, false
	}
	return profile, true
}

// respondWithFailure maps domain errors to status codes.
func (h *Handler) respondWithFailure(w http.ResponseWriter, msg string, err error) {
	var (
		invalid  *custom_errors.ErrInvalidLogin
		notFound *custom_errors.ErrProfileNotFound
	)
	switch {
	case errors.As(err, &invalid):
		respondWithError(w, http.StatusBadRequest, invalid.Error())
	case errors.As(err, &notFound):
		respondWithError(w, http.StatusNotFound, notFound.Error())
	default:
		h.logger.Error(msg, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSnapshotResponse(login string, s database.AnalysisSnapshot, withReport bool) SnapshotResponse {
	resp := SnapshotResponse{
		ID:              s.ID,
		Login:           login,
		ExperienceLevel: s.ExperienceLevel,
		VelocityScore:   s.VelocityScore,
		MarketDemand:    s.MarketDemand,
		AnalyzedAt:      s.AnalyzedAt.Time,
	}
	if withReport {
		resp.Report = json.RawMessage(s.Report)
	}
	return resp
}
