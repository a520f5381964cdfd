package analysis

import (
	"time"

	"github-skill-analyzer/internal/model"
)

type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "Beginner"
	LevelIntermediate ExperienceLevel = "Intermediate"
	LevelAdvanced     ExperienceLevel = "Advanced"
	LevelExpert       ExperienceLevel = "Expert"
)

type TestingRating string

const (
	TestingStrong   TestingRating = "Strong"
	TestingModerate TestingRating = "Moderate"
	TestingSparse   TestingRating = "Sparse"
)

type AutomationRating string

const (
	AutomationAdvanced AutomationRating = "Advanced"
	AutomationBasic    AutomationRating = "Basic"
	AutomationNone     AutomationRating = "None"
)

type DocumentationRating string

const (
	DocumentationComprehensive DocumentationRating = "Comprehensive"
	DocumentationModerate      DocumentationRating = "Moderate"
	DocumentationSparse        DocumentationRating = "Sparse"
)

type ReleaseCadence string

const (
	CadenceWeekly    ReleaseCadence = "Weekly"
	CadenceBiweekly  ReleaseCadence = "Biweekly"
	CadenceMonthly   ReleaseCadence = "Monthly"
	CadenceQuarterly ReleaseCadence = "Quarterly"
	CadenceAdHoc     ReleaseCadence = "Ad-hoc"
)

type MarketDemand string

const (
	DemandMedium   MarketDemand = "Medium"
	DemandHigh     MarketDemand = "High"
	DemandVeryHigh MarketDemand = "Very High"
)

type LanguageStat struct {
	Name       string  `json:"name" yaml:"name"`
	Bytes      int64   `json:"bytes" yaml:"bytes"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// StackDepth tiers a person's technology exposure. The three lists never
// share an entry.
type StackDepth struct {
	Core       []string `json:"core" yaml:"core"`
	Supporting []string `json:"supporting" yaml:"supporting"`
	Emerging   []string `json:"emerging" yaml:"emerging"`
}

type SkillAnalysis struct {
	TopLanguages    []LanguageStat  `json:"topLanguages" yaml:"top_languages"`
	Primary         []string        `json:"primary" yaml:"primary"`
	Secondary       []string        `json:"secondary" yaml:"secondary"`
	Frameworks      []string        `json:"frameworks" yaml:"frameworks"`
	Tools           []string        `json:"tools" yaml:"tools"`
	Archetypes      []string        `json:"archetypes" yaml:"archetypes"`
	StackDepth      StackDepth      `json:"stackDepth" yaml:"stack_depth"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel" yaml:"experience_level"`
	ExperienceScore int             `json:"experienceScore" yaml:"experience_score"`
}

type ActivityMetrics struct {
	RecentPushes         int `json:"recentPushes" yaml:"recent_pushes"`
	ActiveLast30Days     int `json:"activeLast30Days" yaml:"active_last_30_days"`
	ActiveLast90Days     int `json:"activeLast90Days" yaml:"active_last_90_days"`
	MedianUpdateInterval int `json:"medianUpdateInterval" yaml:"median_update_interval"`
	LongestQuietStreak   int `json:"longestQuietStreak" yaml:"longest_quiet_streak"`
	VelocityScore        int `json:"velocityScore" yaml:"velocity_score"`
}

type QualitySignals struct {
	Testing        TestingRating       `json:"testing" yaml:"testing"`
	Automation     AutomationRating    `json:"automation" yaml:"automation"`
	Documentation  DocumentationRating `json:"documentation" yaml:"documentation"`
	ReleaseCadence ReleaseCadence      `json:"releaseCadence" yaml:"release_cadence"`
	Notes          []string            `json:"notes" yaml:"notes"`
}

type Opportunities struct {
	Roles           []string `json:"roles" yaml:"roles"`
	Industries      []string `json:"industries" yaml:"industries"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
	NextActions     []string `json:"nextActions" yaml:"next_actions"`
}

type FuturePrediction struct {
	GrowthAreas   []string     `json:"growthAreas" yaml:"growth_areas"`
	SkillsToLearn []string     `json:"skillsToLearn" yaml:"skills_to_learn"`
	CareerPath    []string     `json:"careerPath" yaml:"career_path"`
	MarketDemand  MarketDemand `json:"marketDemand" yaml:"market_demand"`
}

type Highlight struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`
	Language    string `json:"language" yaml:"language"`
	Stars       int    `json:"stars" yaml:"stars"`
	Reason      string `json:"reason" yaml:"reason"`
}

type TimelineEvent struct {
	Year        int    `json:"year" yaml:"year"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Result is the complete skill report for one account.
type Result struct {
	Account       model.Account            `json:"account" yaml:"account"`
	Skills        SkillAnalysis            `json:"skills" yaml:"skills"`
	Opportunities Opportunities            `json:"opportunities" yaml:"opportunities"`
	Forecast      FuturePrediction         `json:"forecast" yaml:"forecast"`
	Highlights    []Highlight              `json:"highlights" yaml:"highlights"`
	Activity      ActivityMetrics          `json:"activity" yaml:"activity"`
	Quality       QualitySignals           `json:"quality" yaml:"quality"`
	Timeline      []TimelineEvent          `json:"timeline" yaml:"timeline"`
	Contributions *model.ContributionStats `json:"contributions,omitempty" yaml:"contributions,omitempty"`
	AnalyzedAt    time.Time                `json:"analyzedAt" yaml:"analyzed_at"`
}
