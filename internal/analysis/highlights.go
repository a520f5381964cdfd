package analysis

import (
	"sort"

	"github-skill-analyzer/internal/model"
)

const (
	maxHighlights    = 3
	recentStarsFloor = 5
	reasonTopStarred = "Top starred"
	reasonRecent     = "Recent"
	reasonCoreStack  = "Core stack"
	reasonPopular    = "Popular"
)

// selectHighlights picks a small spotlight set: the most starred repository,
// a recent one, one in the priority languages, then popular fill. A
// repository is never selected twice.
func selectHighlights(repos []model.Repository, priority []string) []Highlight {
	out := []Highlight{}
	if len(repos) == 0 {
		return out
	}

	picked := newOrderedSet()
	pick := func(repo model.Repository, reason string) {
		if picked.has(repo.Name) {
			return
		}
		picked.add(repo.Name)
		out = append(out, Highlight{
			Name:        repo.Name,
			Description: repo.Description,
			URL:         repo.URL,
			Language:    repo.Language,
			Stars:       repo.Stars,
			Reason:      reason,
		})
	}

	byStars := append([]model.Repository(nil), repos...)
	sort.SliceStable(byStars, func(i, j int) bool { return byStars[i].Stars > byStars[j].Stars })
	byRecent := append([]model.Repository(nil), repos...)
	sort.SliceStable(byRecent, func(i, j int) bool { return byRecent[i].UpdatedAt.After(byRecent[j].UpdatedAt) })

	pick(byStars[0], reasonTopStarred)

	recent := byRecent[0]
	for _, repo := range byRecent {
		if repo.Stars >= recentStarsFloor {
			recent = repo
			break
		}
	}
	pick(recent, reasonRecent)

coreStack:
	for _, repo := range byStars {
		for _, lang := range priority {
			if repo.HasLanguage(lang) {
				pick(repo, reasonCoreStack)
				break coreStack
			}
		}
	}

	limit := min(maxHighlights, len(repos))
	for _, repo := range byStars {
		if len(out) >= limit {
			break
		}
		pick(repo, reasonPopular)
	}
	return out
}
