package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github-skill-analyzer/internal/model"
)

func reposUpdated(days ...int) []model.Repository {
	repos := make([]model.Repository, len(days))
	for i, d := range days {
		repos[i] = model.Repository{Name: "repo", UpdatedAt: daysAgo(d)}
	}
	return repos
}

func TestAnalyzeActivity(t *testing.T) {
	tests := []struct {
		name  string
		repos []model.Repository
		want  ActivityMetrics
	}{
		{
			name:  "no repositories",
			repos: nil,
			want:  ActivityMetrics{MedianUpdateInterval: 90},
		},
		{
			name:  "single stale repository is floored",
			repos: reposUpdated(45),
			want: ActivityMetrics{
				ActiveLast90Days:     1,
				MedianUpdateInterval: 45,
				LongestQuietStreak:   45,
				VelocityScore:        5,
			},
		},
		{
			name:  "two repositories ninety days apart",
			repos: reposUpdated(10, 100),
			want: ActivityMetrics{
				RecentPushes:         1,
				ActiveLast30Days:     1,
				ActiveLast90Days:     1,
				MedianUpdateInterval: 90,
				LongestQuietStreak:   90,
				VelocityScore:        10,
			},
		},
		{
			name:  "input order does not matter and even gap counts round",
			repos: reposUpdated(41, 3, 20, 0, 10),
			want: ActivityMetrics{
				RecentPushes:         3,
				ActiveLast30Days:     4,
				ActiveLast90Days:     5,
				MedianUpdateInterval: 9,
				LongestQuietStreak:   21,
				VelocityScore:        100,
			},
		},
		{
			name:  "quiet streak counts the newest age, not the oldest",
			repos: reposUpdated(250, 200, 230),
			want: ActivityMetrics{
				MedianUpdateInterval: 25,
				LongestQuietStreak:   200,
				VelocityScore:        5,
			},
		},
		{
			name:  "quiet streak takes the widest gap over the newest age",
			repos: reposUpdated(120, 5, 15),
			want: ActivityMetrics{
				RecentPushes:         1,
				ActiveLast30Days:     2,
				ActiveLast90Days:     2,
				MedianUpdateInterval: 58,
				LongestQuietStreak:   105,
				VelocityScore:        28,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analyzeActivity(tt.repos, testNow))
		})
	}
}

func TestDaysSince(t *testing.T) {
	assert.Equal(t, 0, daysSince(testNow, testNow))
	assert.Equal(t, 0, daysSince(testNow.AddDate(0, 0, 3), testNow))
	assert.Equal(t, 7, daysSince(daysAgo(7), testNow))
}

func TestMedianInt(t *testing.T) {
	assert.Equal(t, 5, medianInt([]int{9, 1, 5}))
	assert.Equal(t, 4, medianInt([]int{2, 5}))
	assert.Equal(t, 3, medianInt([]int{1, 4, 2, 8}))
}
