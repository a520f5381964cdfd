package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github-skill-analyzer/internal/analysis"
)

func writeMarkdown(w io.Writer, r *analysis.Result) error {
	bw := bufio.NewWriter(w)

	title := r.Account.Login
	if r.Account.Name != "" {
		title = fmt.Sprintf("%s (%s)", r.Account.Name, r.Account.Login)
	}
	fmt.Fprintf(bw, "# Skill report: %s\n\n", title)
	fmt.Fprintf(bw, "Analyzed %s. Experience: **%s** (score %d).\n\n",
		r.AnalyzedAt.Format("2006-01-02"), r.Skills.ExperienceLevel, r.Skills.ExperienceScore)

	section(bw, "Skills")
	if len(r.Skills.TopLanguages) > 0 {
		fmt.Fprintln(bw, "| Language | Share |")
		fmt.Fprintln(bw, "|---|---|")
		for _, l := range r.Skills.TopLanguages {
			fmt.Fprintf(bw, "| %s | %.1f%% |\n", l.Name, l.Percentage)
		}
		fmt.Fprintln(bw)
	}
	item(bw, "Primary", r.Skills.Primary)
	item(bw, "Secondary", r.Skills.Secondary)
	item(bw, "Frameworks", r.Skills.Frameworks)
	item(bw, "Tools", r.Skills.Tools)
	item(bw, "Archetypes", r.Skills.Archetypes)
	fmt.Fprintln(bw)

	section(bw, "Stack depth")
	item(bw, "Core", r.Skills.StackDepth.Core)
	item(bw, "Supporting", r.Skills.StackDepth.Supporting)
	item(bw, "Emerging", r.Skills.StackDepth.Emerging)
	fmt.Fprintln(bw)

	a := r.Activity
	section(bw, "Activity")
	fmt.Fprintf(bw, "- Velocity score: %d\n", a.VelocityScore)
	fmt.Fprintf(bw, "- Pushed in the last 14 days: %d\n", a.RecentPushes)
	fmt.Fprintf(bw, "- Active in the last 30 / 90 days: %d / %d\n", a.ActiveLast30Days, a.ActiveLast90Days)
	fmt.Fprintf(bw, "- Median update interval: %d days\n", a.MedianUpdateInterval)
	fmt.Fprintf(bw, "- Longest quiet streak: %d days\n\n", a.LongestQuietStreak)

	q := r.Quality
	section(bw, "Quality")
	fmt.Fprintf(bw, "- Testing: %s\n", q.Testing)
	fmt.Fprintf(bw, "- Automation: %s\n", q.Automation)
	fmt.Fprintf(bw, "- Documentation: %s\n", q.Documentation)
	fmt.Fprintf(bw, "- Release cadence: %s\n", q.ReleaseCadence)
	bullets(bw, q.Notes)
	fmt.Fprintln(bw)

	section(bw, "Opportunities")
	item(bw, "Roles", r.Opportunities.Roles)
	item(bw, "Industries", r.Opportunities.Industries)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Recommendations:")
	bullets(bw, r.Opportunities.Recommendations)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Next actions:")
	bullets(bw, r.Opportunities.NextActions)
	fmt.Fprintln(bw)

	f := r.Forecast
	section(bw, "Forecast")
	fmt.Fprintf(bw, "- Market demand: %s\n", f.MarketDemand)
	item(bw, "Growth areas", f.GrowthAreas)
	item(bw, "Skills to learn", f.SkillsToLearn)
	fmt.Fprintf(bw, "- Career path: %s\n\n", strings.Join(f.CareerPath, " → "))

	section(bw, "Timeline")
	for _, ev := range r.Timeline {
		fmt.Fprintf(bw, "- **%d** %s: %s\n", ev.Year, ev.Title, ev.Description)
	}
	fmt.Fprintln(bw)

	section(bw, "Highlights")
	if len(r.Highlights) == 0 {
		fmt.Fprintln(bw, "_No public repositories._")
	}
	for _, h := range r.Highlights {
		name := h.Name
		if h.URL != "" {
			name = fmt.Sprintf("[%s](%s)", h.Name, h.URL)
		}
		fmt.Fprintf(bw, "- %s (%s, ★%d): %s", name, h.Reason, h.Stars, orDash(h.Language))
		if h.Description != "" {
			fmt.Fprintf(bw, ". %s", h.Description)
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	if c := r.Contributions; c != nil {
		section(bw, "Contributions")
		fmt.Fprintf(bw, "- Pull requests opened / merged / still open: %d / %d / %d\n",
			c.PullRequestsOpened, c.PullRequestsMerged, c.PullRequestsOpen)
		fmt.Fprintf(bw, "- Issues opened / closed: %d / %d\n", c.IssuesOpened, c.IssuesClosed)
		for _, pr := range c.RecentPullRequests {
			fmt.Fprintf(bw, "  - [%s](%s) in %s (%s)\n", pr.Title, pr.URL, pr.Repo, pr.Status)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

func writeComparisonMarkdown(w io.Writer, cmp Comparison) error {
	bw := bufio.NewWriter(w)
	c := cmp.Comparison
	fmt.Fprintf(bw, "# Comparison: %s vs %s\n\n", cmp.Primary.Account.Login, cmp.Other.Account.Login)
	item(bw, "Shared skills", c.SharedSkills)
	item(bw, "Only "+cmp.Primary.Account.Login, c.OnlyPrimary)
	item(bw, "Only "+cmp.Other.Account.Login, c.OnlyOther)
	fmt.Fprintf(bw, "- Velocity delta: %+d\n", c.VelocityDelta)
	fmt.Fprintf(bw, "- Experience: %s vs %s\n", c.ExperienceLevels[0], c.ExperienceLevels[1])
	return bw.Flush()
}

func section(w io.Writer, name string) {
	fmt.Fprintf(w, "## %s\n\n", name)
}

func item(w io.Writer, label string, values []string) {
	fmt.Fprintf(w, "- %s: %s\n", label, orDash(strings.Join(values, ", ")))
}

func bullets(w io.Writer, values []string) {
	for _, v := range values {
		fmt.Fprintf(w, "- %s\n", v)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
