package github

import (
	"path"

	"github.com/google/go-github/v62/github"

	"github-skill-analyzer/internal/model"
)

const maxRecentPullRequests = 5

// DeriveContributionStats summarises pull request and issue activity from a
// public event feed, newest event first. It returns nil when there are no
// events.
func DeriveContributionStats(events []*github.Event) *model.ContributionStats {
	if len(events) == 0 {
		return nil
	}

	stats := &model.ContributionStats{RecentPullRequests: []model.PullRequestRecord{}}
	seen := make(map[string]struct{})
	closed := 0

	for _, ev := range events {
		switch ev.GetType() {
		case "PullRequestEvent":
			payload, err := ev.ParsePayload()
			if err != nil {
				continue
			}
			pre, ok := payload.(*github.PullRequestEvent)
			if !ok {
				continue
			}
			pr := pre.GetPullRequest()
			switch pre.GetAction() {
			case "opened":
				stats.PullRequestsOpened++
			case "closed":
				closed++
				if pr.GetMerged() {
					stats.PullRequestsMerged++
				}
			default:
				continue
			}

			key := pr.GetHTMLURL()
			if _, dup := seen[key]; dup || len(stats.RecentPullRequests) >= maxRecentPullRequests {
				continue
			}
			seen[key] = struct{}{}
			stats.RecentPullRequests = append(stats.RecentPullRequests, model.PullRequestRecord{
				Repo:      repoShortName(ev.GetRepo().GetName()),
				Title:     pr.GetTitle(),
				Status:    pullRequestStatus(pr),
				URL:       key,
				CreatedAt: pr.GetCreatedAt().Time,
			})

		case "IssuesEvent":
			payload, err := ev.ParsePayload()
			if err != nil {
				continue
			}
			ie, ok := payload.(*github.IssuesEvent)
			if !ok {
				continue
			}
			switch ie.GetAction() {
			case "opened":
				stats.IssuesOpened++
			case "closed":
				stats.IssuesClosed++
			}
		}
	}

	stats.PullRequestsOpen = max(stats.PullRequestsOpened-closed, 0)

	return stats
}

// repoShortName drops the owner from an "owner/name" repository name.
func repoShortName(full string) string {
	if full == "" {
		return ""
	}
	return path.Base(full)
}

func pullRequestStatus(pr *github.PullRequest) model.PullRequestStatus {
	switch {
	case pr.GetMerged() || pr.MergedAt != nil:
		return model.PullRequestMerged
	case pr.GetState() == "closed":
		return model.PullRequestClosed
	default:
		return model.PullRequestOpen
	}
}
