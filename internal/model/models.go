// internal/model/models.go
package model

import (
	"sort"
	"time"
)

// Account is the public GitHub account snapshot an analysis runs against.
type Account struct {
	Login       string    `json:"login" yaml:"login"`
	Name        string    `json:"name" yaml:"name"`
	Bio         string    `json:"bio" yaml:"bio"`
	PublicRepos int       `json:"publicRepos" yaml:"public_repos"`
	Followers   int       `json:"followers" yaml:"followers"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
}

// Repository is the metadata of a single GitHub repository.
// Languages maps a language name to its byte count and may be empty for
// repositories beyond the language fetch depth.
type Repository struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Language    string           `json:"language"`
	Stars       int              `json:"stars"`
	Forks       int              `json:"forks"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Topics      []string         `json:"topics"`
	URL         string           `json:"url"`
	Languages   map[string]int64 `json:"languages"`
}

// LanguageBytes returns the per-language byte counts of the repository.
// An empty map degenerates to a single entry for the primary language with a
// weight of 1.
func (r Repository) LanguageBytes() map[string]int64 {
	if len(r.Languages) > 0 {
		return r.Languages
	}
	if r.Language == "" {
		return nil
	}
	return map[string]int64{r.Language: 1}
}

// OrderedLanguages returns the repository's languages by descending byte count,
// breaking ties by name.
func (r Repository) OrderedLanguages() []string {
	bytes := r.LanguageBytes()
	names := make([]string, 0, len(bytes))
	for name := range bytes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if bytes[names[i]] != bytes[names[j]] {
			return bytes[names[i]] > bytes[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// HasLanguage reports whether lang is the primary language or appears in the
// language byte map.
func (r Repository) HasLanguage(lang string) bool {
	if r.Language == lang {
		return true
	}
	_, ok := r.Languages[lang]
	return ok
}

// PullRequestStatus is the state of a pull request.
type PullRequestStatus string

const (
	PullRequestOpen   PullRequestStatus = "open"
	PullRequestClosed PullRequestStatus = "closed"
	PullRequestMerged PullRequestStatus = "merged"
)

type PullRequestRecord struct {
	Repo      string            `json:"repo" yaml:"repo"`
	Title     string            `json:"title" yaml:"title"`
	Status    PullRequestStatus `json:"status" yaml:"status"`
	URL       string            `json:"url" yaml:"url"`
	CreatedAt time.Time         `json:"createdAt" yaml:"created_at"`
}

// ContributionStats summarises pull request and issue activity from the
// recent public events feed.
type ContributionStats struct {
	PullRequestsOpened int                 `json:"pullRequestsOpened" yaml:"pull_requests_opened"`
	PullRequestsMerged int                 `json:"pullRequestsMerged" yaml:"pull_requests_merged"`
	PullRequestsOpen   int                 `json:"pullRequestsOpen" yaml:"pull_requests_open"`
	IssuesOpened       int                 `json:"issuesOpened" yaml:"issues_opened"`
	IssuesClosed       int                 `json:"issuesClosed" yaml:"issues_closed"`
	RecentPullRequests []PullRequestRecord `json:"recentPullRequests" yaml:"recent_pull_requests"`
}

// Profile is a complete fetch snapshot of one account.
type Profile struct {
	Account       Account
	Repositories  []Repository
	Contributions *ContributionStats
}
