package analysis

import (
	"fmt"
	"unicode/utf8"

	"github-skill-analyzer/internal/model"
)

const longDescription = 80

// evaluateQuality rates testing, automation and documentation maturity from
// keyword hit ratios and derives a release cadence from the activity metrics.
func evaluateQuality(repos []model.Repository, activity ActivityMetrics) QualitySignals {
	if len(repos) == 0 {
		return QualitySignals{
			Testing:        TestingSparse,
			Automation:     AutomationNone,
			Documentation:  DocumentationSparse,
			ReleaseCadence: CadenceAdHoc,
			Notes:          []string{"No public repositories available to evaluate quality signals."},
		}
	}

	var testingHits, automationHits, documentationHits int
	for _, repo := range repos {
		text := haystack(repo)
		if containsAny(text, testingKeywords) {
			testingHits++
		}
		if containsAny(text, automationKeywords) {
			automationHits++
		}
		if utf8.RuneCountInString(repo.Description) > longDescription || containsAny(text, documentationKeywords) {
			documentationHits++
		}
	}

	total := float64(len(repos))
	q := QualitySignals{
		Testing:        testingRating(float64(testingHits) / total),
		Automation:     automationRating(float64(automationHits) / total),
		Documentation:  documentationRating(float64(documentationHits) / total),
		ReleaseCadence: releaseCadence(activity.MedianUpdateInterval),
		Notes:          []string{},
	}

	if q.Testing == TestingSparse {
		q.Notes = append(q.Notes, "Few repositories mention tests; add test suites to signal reliability.")
	}
	if q.Automation == AutomationNone {
		q.Notes = append(q.Notes, "No CI/CD automation detected across repositories.")
	}
	if q.Documentation == DocumentationSparse {
		q.Notes = append(q.Notes, "Documentation is thin; richer descriptions and guides would help reviewers.")
	}
	if activity.RecentPushes >= 3 {
		q.Notes = append(q.Notes, fmt.Sprintf("%d repositories pushed in the last two weeks.", activity.RecentPushes))
	}
	if activity.VelocityScore >= 70 {
		q.Notes = append(q.Notes, "High delivery velocity across recent projects.")
	}
	return q
}

func testingRating(ratio float64) TestingRating {
	switch {
	case ratio >= 0.35:
		return TestingStrong
	case ratio >= 0.18:
		return TestingModerate
	default:
		return TestingSparse
	}
}

func automationRating(ratio float64) AutomationRating {
	switch {
	case ratio >= 0.30:
		return AutomationAdvanced
	case ratio >= 0.15:
		return AutomationBasic
	default:
		return AutomationNone
	}
}

func documentationRating(ratio float64) DocumentationRating {
	switch {
	case ratio >= 0.45:
		return DocumentationComprehensive
	case ratio >= 0.20:
		return DocumentationModerate
	default:
		return DocumentationSparse
	}
}

func releaseCadence(medianInterval int) ReleaseCadence {
	switch {
	case medianInterval <= 14:
		return CadenceWeekly
	case medianInterval <= 30:
		return CadenceBiweekly
	case medianInterval <= 60:
		return CadenceMonthly
	case medianInterval <= 120:
		return CadenceQuarterly
	default:
		return CadenceAdHoc
	}
}
