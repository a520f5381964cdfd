package analysis

import (
	"math"
	"sort"
	"time"

	"github-skill-analyzer/internal/model"
)

const defaultMedianInterval = 90

// daysSince returns the whole days elapsed between t and now, never negative.
func daysSince(t, now time.Time) int {
	d := int(now.Sub(t).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// analyzeActivity derives update cadence and a bounded velocity score from
// repository update timestamps.
func analyzeActivity(repos []model.Repository, now time.Time) ActivityMetrics {
	if len(repos) == 0 {
		return ActivityMetrics{MedianUpdateInterval: defaultMedianInterval}
	}

	sorted := append([]model.Repository(nil), repos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})

	ages := make([]int, len(sorted))
	for i, repo := range sorted {
		ages[i] = daysSince(repo.UpdatedAt, now)
	}

	gaps := make([]int, 0, len(ages)-1)
	for i := 1; i < len(ages); i++ {
		gaps = append(gaps, ages[i]-ages[i-1])
	}

	var m ActivityMetrics
	for _, age := range ages {
		if age <= 14 {
			m.RecentPushes++
		}
		if age <= 30 {
			m.ActiveLast30Days++
		}
		if age <= 90 {
			m.ActiveLast90Days++
		}
	}

	if len(gaps) == 0 {
		m.MedianUpdateInterval = ages[0]
	} else {
		m.MedianUpdateInterval = medianInt(gaps)
	}

	// The quiet period since the latest update counts as a streak too, so a
	// lone repository's age is its own streak.
	m.LongestQuietStreak = ages[0]
	for _, gap := range gaps {
		if gap > m.LongestQuietStreak {
			m.LongestQuietStreak = gap
		}
	}

	penalty := clampInt(m.LongestQuietStreak/30*8, 0, 30)
	raw := m.ActiveLast30Days*12 + m.ActiveLast90Days*6 + m.RecentPushes*16 - penalty
	m.VelocityScore = clampInt(raw, 5, 100)

	return m
}

// medianInt returns the median of xs; an even count rounds the mean of the
// middle pair.
func medianInt(xs []int) int {
	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	mid := len(cp) / 2
	if len(cp)%2 == 1 {
		return cp[mid]
	}
	return int(math.Round(float64(cp[mid-1]+cp[mid]) / 2))
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
