package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github-skill-analyzer/internal/analysis"
	"github-skill-analyzer/internal/model"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func sampleResult(login string) *analysis.Result {
	profile := model.Profile{
		Account: model.Account{Login: login, Name: "The Octocat", CreatedAt: now.AddDate(-4, 0, 0)},
		Repositories: []model.Repository{
			{
				Name:        "api",
				Description: "REST service",
				Language:    "Go",
				Stars:       42,
				Topics:      []string{"docker", "postgres"},
				URL:         "https://github.com/" + login + "/api",
				CreatedAt:   now.AddDate(-2, 0, 0),
				UpdatedAt:   now.AddDate(0, 0, -3),
				Languages:   map[string]int64{"Go": 9000, "Dockerfile": 100},
			},
			{
				Name:      "site",
				Language:  "TypeScript",
				Stars:     3,
				Topics:    []string{"react"},
				CreatedAt: now.AddDate(-1, 0, 0),
				UpdatedAt: now.AddDate(0, 0, -40),
			},
		},
		Contributions: &model.ContributionStats{
			PullRequestsOpened: 2,
			PullRequestsMerged: 1,
			PullRequestsOpen:   1,
			RecentPullRequests: []model.PullRequestRecord{
				{Repo: "go", Title: "fix typo", Status: model.PullRequestMerged, URL: "https://github.com/golang/go/pull/1"},
			},
		},
	}
	return analysis.Analyze(profile, now)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "yaml", "markdown"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("table")
	assert.Error(t, err)
}

func TestRender_JSON(t *testing.T) {
	result := sampleResult("octocat")
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, result, FormatJSON))

	var got analysis.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "octocat", got.Account.Login)
	assert.Equal(t, result.Skills.StackDepth, got.Skills.StackDepth)
	assert.Contains(t, buf.String(), "\n  \"account\"")
}

func TestRender_YAML(t *testing.T) {
	result := sampleResult("octocat")
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, result, FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Contains(t, got, "skills")
	assert.Contains(t, got, "analyzed_at")
	assert.Contains(t, buf.String(), "experience_level: "+string(result.Skills.ExperienceLevel))
}

func TestRender_Markdown(t *testing.T) {
	result := sampleResult("octocat")
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, result, FormatMarkdown))

	out := buf.String()
	assert.Contains(t, out, "# Skill report: The Octocat (octocat)")
	for _, heading := range []string{"## Skills", "## Stack depth", "## Activity", "## Quality", "## Opportunities", "## Forecast", "## Timeline", "## Highlights", "## Contributions"} {
		assert.Contains(t, out, heading)
	}
	assert.Contains(t, out, "| Go |")
	assert.Contains(t, out, "[api](https://github.com/octocat/api)")
	assert.Contains(t, out, "[fix typo](https://github.com/golang/go/pull/1) in go (merged)")
}

func TestRender_MarkdownWithoutRepositories(t *testing.T) {
	result := analysis.Analyze(model.Profile{Account: model.Account{Login: "empty"}}, now)
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, result, FormatMarkdown))

	out := buf.String()
	assert.Contains(t, out, "# Skill report: empty")
	assert.Contains(t, out, "_No public repositories._")
	assert.NotContains(t, out, "## Contributions")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleResult("octocat"), Format("csv"))
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestRenderComparison(t *testing.T) {
	primary := sampleResult("octocat")
	other := analysis.Analyze(model.Profile{
		Account: model.Account{Login: "hubot"},
		Repositories: []model.Repository{
			{Name: "ml", Language: "Python", Topics: []string{"docker"}, CreatedAt: now.AddDate(-1, 0, 0), UpdatedAt: now.AddDate(0, 0, -1)},
		},
	}, now)
	cmp := Comparison{Primary: primary, Other: other, Comparison: analysis.Compare(primary, other)}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderComparison(&buf, cmp, FormatJSON))

		var got struct {
			Primary    analysis.Result     `json:"primary"`
			Other      analysis.Result     `json:"other"`
			Comparison analysis.Comparison `json:"comparison"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "hubot", got.Other.Account.Login)
		assert.Equal(t, cmp.Comparison.VelocityDelta, got.Comparison.VelocityDelta)
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderComparison(&buf, cmp, FormatMarkdown))

		out := buf.String()
		assert.Contains(t, out, "# Skill report: The Octocat (octocat)")
		assert.Contains(t, out, "# Skill report: hubot")
		assert.Contains(t, out, "# Comparison: octocat vs hubot")
		assert.Contains(t, out, "- Only octocat:")
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, RenderComparison(&buf, cmp, Format("xml")))
	})
}
