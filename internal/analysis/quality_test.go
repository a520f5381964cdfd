package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-skill-analyzer/internal/model"
)

func TestEvaluateQuality_NoRepositories(t *testing.T) {
	q := evaluateQuality(nil, ActivityMetrics{MedianUpdateInterval: 90})

	assert.Equal(t, TestingSparse, q.Testing)
	assert.Equal(t, AutomationNone, q.Automation)
	assert.Equal(t, DocumentationSparse, q.Documentation)
	assert.Equal(t, CadenceAdHoc, q.ReleaseCadence)
	require.Len(t, q.Notes, 1)
}

func TestEvaluateQuality(t *testing.T) {
	repos := []model.Repository{
		{Name: "api-server", Topics: []string{"jest", "github-actions"}},
		{Name: "handbook"},
		{Name: "blog", Description: strings.Repeat("a", 81)},
		{Name: "tool"},
	}
	activity := ActivityMetrics{MedianUpdateInterval: 20, RecentPushes: 3, VelocityScore: 75}

	q := evaluateQuality(repos, activity)

	assert.Equal(t, TestingModerate, q.Testing)
	assert.Equal(t, AutomationBasic, q.Automation)
	assert.Equal(t, DocumentationComprehensive, q.Documentation)
	assert.Equal(t, CadenceBiweekly, q.ReleaseCadence)
	assert.Equal(t, []string{
		"3 repositories pushed in the last two weeks.",
		"High delivery velocity across recent projects.",
	}, q.Notes)
}

func TestEvaluateQuality_DescriptionLengthCountsRunes(t *testing.T) {
	// 80 multi-byte runes stay under the threshold even though they exceed
	// 80 bytes.
	repos := []model.Repository{{Name: "x", Description: strings.Repeat("é", 80)}}
	q := evaluateQuality(repos, ActivityMetrics{})
	assert.Equal(t, DocumentationSparse, q.Documentation)
}

func TestEvaluateQuality_KeywordsMatchInsideWords(t *testing.T) {
	repos := []model.Repository{{Name: "social-feed"}}
	q := evaluateQuality(repos, ActivityMetrics{})
	assert.Equal(t, AutomationAdvanced, q.Automation)
}

func TestRatings(t *testing.T) {
	tests := []struct {
		ratio float64
		test  TestingRating
		auto  AutomationRating
		docs  DocumentationRating
	}{
		{0, TestingSparse, AutomationNone, DocumentationSparse},
		{0.15, TestingSparse, AutomationBasic, DocumentationSparse},
		{0.18, TestingModerate, AutomationBasic, DocumentationSparse},
		{0.20, TestingModerate, AutomationBasic, DocumentationModerate},
		{0.30, TestingModerate, AutomationAdvanced, DocumentationModerate},
		{0.35, TestingStrong, AutomationAdvanced, DocumentationModerate},
		{0.45, TestingStrong, AutomationAdvanced, DocumentationComprehensive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.test, testingRating(tt.ratio), "testing at %v", tt.ratio)
		assert.Equal(t, tt.auto, automationRating(tt.ratio), "automation at %v", tt.ratio)
		assert.Equal(t, tt.docs, documentationRating(tt.ratio), "documentation at %v", tt.ratio)
	}
}

func TestReleaseCadence(t *testing.T) {
	tests := []struct {
		median int
		want   ReleaseCadence
	}{
		{0, CadenceWeekly},
		{14, CadenceWeekly},
		{15, CadenceBiweekly},
		{30, CadenceBiweekly},
		{60, CadenceMonthly},
		{120, CadenceQuarterly},
		{121, CadenceAdHoc},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, releaseCadence(tt.median), "median %d", tt.median)
	}
}
