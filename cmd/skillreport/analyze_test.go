package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-skill-analyzer/internal/analysis"
	custom_errors "github-skill-analyzer/internal/errors"
	"github-skill-analyzer/internal/model"
)

type fakeFetcher map[string]*model.Profile

func (f fakeFetcher) FetchProfile(_ context.Context, login string) (*model.Profile, error) {
	p, ok := f[login]
	if !ok {
		return nil, &custom_errors.ErrProfileNotFound{Login: login}
	}
	return p, nil
}

func profileWith(login, lang string, topics ...string) *model.Profile {
	updated := time.Now().AddDate(0, 0, -1)
	return &model.Profile{
		Account: model.Account{Login: login, CreatedAt: updated.AddDate(-3, 0, 0)},
		Repositories: []model.Repository{
			{Name: login + "-main", Language: lang, Topics: topics, CreatedAt: updated.AddDate(-1, 0, 0), UpdatedAt: updated},
		},
	}
}

func execute(t *testing.T, fetcher fakeFetcher, args ...string) (string, string, error) {
	t.Helper()
	var gotOpts *options
	root := newRootCmd(func(opts *options, _ *slog.Logger) profileFetcher {
		gotOpts = opts
		return fetcher
	})
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		require.NotNil(t, gotOpts)
	}
	return stdout.String(), stderr.String(), err
}

func TestAnalyzeCmd(t *testing.T) {
	fetcher := fakeFetcher{
		"octocat": profileWith("octocat", "Go", "docker"),
		"hubot":   profileWith("hubot", "Python", "docker"),
	}

	t.Run("markdown by default", func(t *testing.T) {
		out, _, err := execute(t, fetcher, "analyze", "octocat")

		require.NoError(t, err)
		assert.Contains(t, out, "# Skill report: octocat")
		assert.Contains(t, out, "## Stack depth")
	})

	t.Run("json output", func(t *testing.T) {
		out, _, err := execute(t, fetcher, "analyze", "octocat", "-o", "json")

		require.NoError(t, err)
		var got analysis.Result
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "octocat", got.Account.Login)
	})

	t.Run("yaml output", func(t *testing.T) {
		out, _, err := execute(t, fetcher, "analyze", "octocat", "--output", "yaml")

		require.NoError(t, err)
		assert.Contains(t, out, "login: octocat")
	})

	t.Run("comparison", func(t *testing.T) {
		out, _, err := execute(t, fetcher, "analyze", "octocat", "--compare", "hubot", "-o", "json")

		require.NoError(t, err)
		var got struct {
			Primary    analysis.Result     `json:"primary"`
			Other      analysis.Result     `json:"other"`
			Comparison analysis.Comparison `json:"comparison"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "hubot", got.Other.Account.Login)
		assert.Contains(t, got.Comparison.SharedSkills, "Docker")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, stderr, err := execute(t, fetcher, "analyze", "octocat", "-o", "table")

		require.Error(t, err)
		assert.Contains(t, stderr, "unknown output format")
	})

	t.Run("invalid login", func(t *testing.T) {
		_, _, err := execute(t, fetcher, "analyze", "not_valid")

		var target *custom_errors.ErrInvalidLogin
		assert.ErrorAs(t, err, &target)
	})

	t.Run("missing account", func(t *testing.T) {
		_, _, err := execute(t, fetcher, "analyze", "ghost")

		var target *custom_errors.ErrProfileNotFound
		assert.ErrorAs(t, err, &target)
	})

	t.Run("requires a login", func(t *testing.T) {
		_, _, err := execute(t, fetcher, "analyze")

		assert.Error(t, err)
	})
}

func TestRootCmd_TokenFromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "from-env")

	var token string
	root := newRootCmd(func(opts *options, _ *slog.Logger) profileFetcher {
		token = opts.token
		return fakeFetcher{"octocat": profileWith("octocat", "Go")}
	})
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"analyze", "octocat"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "from-env", token)
}
