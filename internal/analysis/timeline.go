package analysis

import (
	"fmt"
	"sort"
	"time"

	"github-skill-analyzer/internal/model"
)

const adoptionEvents = 3

// buildTimeline narrates the account history as year-ordered milestones,
// unique by year and title.
func buildTimeline(account model.Account, repos []model.Repository, languages []LanguageStat, now time.Time) []TimelineEvent {
	events := []TimelineEvent{{
		Year:        account.CreatedAt.Year(),
		Title:       "Joined GitHub",
		Description: fmt.Sprintf("Account created; %d public repositories to date", account.PublicRepos),
	}}

	if len(repos) > 0 {
		byCreated := append([]model.Repository(nil), repos...)
		sort.SliceStable(byCreated, func(i, j int) bool {
			return byCreated[i].CreatedAt.Before(byCreated[j].CreatedAt)
		})

		first := byCreated[0]
		events = append(events, TimelineEvent{
			Year:        first.CreatedAt.Year(),
			Title:       "First Repository",
			Description: fmt.Sprintf("Published %s", first.Name),
		})

		for i := 0; i < adoptionEvents && i < len(languages); i++ {
			lang := languages[i].Name
			for _, repo := range byCreated {
				if !repo.HasLanguage(lang) {
					continue
				}
				events = append(events, TimelineEvent{
					Year:        repo.CreatedAt.Year(),
					Title:       "Adopted " + lang,
					Description: fmt.Sprintf("First used in %s", repo.Name),
				})
				break
			}
		}

		latest := repos[0]
		for _, repo := range repos[1:] {
			if repo.UpdatedAt.After(latest.UpdatedAt) {
				latest = repo
			}
		}
		events = append(events, TimelineEvent{
			Year:        latest.UpdatedAt.Year(),
			Title:       "Latest Launch",
			Description: fmt.Sprintf("%s updated %s ago", latest.Name, humanizeAge(latest.UpdatedAt, now)),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Year < events[j].Year
	})

	seen := make(map[string]struct{}, len(events))
	unique := make([]TimelineEvent, 0, len(events))
	for _, ev := range events {
		key := fmt.Sprintf("%d-%s", ev.Year, ev.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, ev)
	}
	return unique
}

// humanizeAge renders the time since t in a compact relative form such as
// "3 days", "2 wks", "5 mo" or "2 yrs".
func humanizeAge(t, now time.Time) string {
	days := daysSince(t, now)
	switch {
	case days <= 1:
		return "1 day"
	case days < 7:
		return fmt.Sprintf("%d days", days)
	case days < 35:
		return fmt.Sprintf("%d wks", days/7)
	}
	if months := days / 30; months < 12 {
		return fmt.Sprintf("%d mo", months)
	}
	years := days / 365
	if years <= 1 {
		return "1 yr"
	}
	return fmt.Sprintf("%d yrs", years)
}
