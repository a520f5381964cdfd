package analysis

import (
	"time"

	"github-skill-analyzer/internal/model"
)

// Analyzer runs the skill report pipeline against a fetched profile.
type Analyzer struct {
	now func() time.Time
}

type Option func(*Analyzer)

// WithClock sets the clock used for recency windows.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// NewAnalyzer creates an analyzer reading the wall clock unless configured
// otherwise.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze produces the report for profile as of the analyzer's clock.
func (a *Analyzer) Analyze(profile model.Profile) *Result {
	return Analyze(profile, a.now().UTC())
}

// Analyze derives the full report from profile. It is pure: identical inputs
// and now always give an identical result.
func Analyze(profile model.Profile, now time.Time) *Result {
	repos := profile.Repositories

	skills := analyzeSkills(profile.Account, repos, now)
	activity := analyzeActivity(repos, now)
	quality := evaluateQuality(repos, activity)

	return &Result{
		Account:       profile.Account,
		Skills:        skills,
		Opportunities: findOpportunities(skills, quality, activity),
		Forecast:      forecast(skills, quality, activity),
		Highlights:    selectHighlights(repos, languageNames(skills.TopLanguages, 0, primaryCount)),
		Activity:      activity,
		Quality:       quality,
		Timeline:      buildTimeline(profile.Account, repos, skills.TopLanguages, now),
		Contributions: profile.Contributions,
		AnalyzedAt:    now,
	}
}
