package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-skill-analyzer/internal/model"
)

func TestLanguageDistribution(t *testing.T) {
	tests := []struct {
		name      string
		repos     []model.Repository
		wantNames []string
	}{
		{
			name:      "no repositories",
			repos:     nil,
			wantNames: []string{},
		},
		{
			name: "repositories without any language are ignored",
			repos: []model.Repository{
				{Name: "empty"},
			},
			wantNames: []string{},
		},
		{
			name: "bytes are summed across repositories",
			repos: []model.Repository{
				{Name: "a", Language: "Go", Languages: map[string]int64{"Go": 300, "Python": 100}},
				{Name: "b", Language: "Go", Languages: map[string]int64{"Go": 100}},
				{Name: "c", Language: "Shell"},
			},
			wantNames: []string{"Go", "Python", "Shell"},
		},
		{
			name: "equal shares keep encounter order",
			repos: []model.Repository{
				{Name: "a", Languages: map[string]int64{"Zig": 50}},
				{Name: "b", Languages: map[string]int64{"Rust": 50}},
			},
			wantNames: []string{"Zig", "Rust"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := languageDistribution(tt.repos)
			require.NotNil(t, stats)

			names := make([]string, 0, len(stats))
			var sum float64
			for _, s := range stats {
				names = append(names, s.Name)
				sum += s.Percentage
			}
			assert.Equal(t, tt.wantNames, names)
			if len(stats) > 0 {
				assert.InDelta(t, 100.0, sum, 0.0001)
			}
		})
	}
}

func TestLanguageDistribution_CapsAtTen(t *testing.T) {
	langs := map[string]int64{}
	for i := 0; i < 12; i++ {
		langs[fmt.Sprintf("Lang%02d", i)] = int64(100 + i)
	}

	stats := languageDistribution([]model.Repository{{Name: "polyglot", Languages: langs}})

	require.Len(t, stats, maxTopLanguages)
	assert.Equal(t, "Lang11", stats[0].Name)
	assert.Equal(t, int64(111), stats[0].Bytes)
	for i := 1; i < len(stats); i++ {
		assert.GreaterOrEqual(t, stats[i-1].Percentage, stats[i].Percentage)
	}
}

func TestDetectTechnologies(t *testing.T) {
	repos := []model.Repository{
		{Name: "shop-frontend", Topics: []string{"vite", "react"}, UpdatedAt: daysAgo(10)},
		{Name: "api", Description: "REST service with express and docker", UpdatedAt: daysAgo(400)},
		{Name: "pipeline", Topics: []string{"github-actions"}, UpdatedAt: daysAgo(20)},
	}

	det := detectTechnologies(repos, testNow)

	assert.Equal(t, []string{"React", "Vite", "Express", "Docker"}, det.frameworks)
	// "git" is a substring of "github-actions".
	assert.Equal(t, []string{"Docker", "Git", "CI/CD"}, det.tools)
	assert.Equal(t, 1, det.repoCounts["React"])
	assert.True(t, det.recent["React"])
	assert.False(t, det.recent["Express"])
}

func TestDetectArchetypes(t *testing.T) {
	tests := []struct {
		name       string
		frameworks []string
		tools      []string
		languages  []string
		want       []string
	}{
		{
			name:       "nothing detected",
			frameworks: nil,
			want:       []string{},
		},
		{
			name:       "react with vite",
			frameworks: []string{"React", "Vite"},
			want:       []string{"React + Vite"},
		},
		{
			name:       "react with next and a postgres backend",
			frameworks: []string{"React", "Next.js", "Express", "PostgreSQL"},
			want:       []string{"PERN Stack", "Next.js", "Node.js + Express"},
		},
		{
			name:       "three of four components satisfy overlapping stacks",
			frameworks: []string{"React", "Node.js", "Express", "MongoDB"},
			want:       []string{"MERN Stack", "PERN Stack", "MEAN Stack", "Node.js + Express"},
		},
		{
			name:       "capped at four",
			frameworks: []string{"Angular", "Node.js", "Express", "TypeScript", "MongoDB", "React"},
			want:       []string{"MERN Stack", "PERN Stack", "MEAN Stack", "Angular"},
		},
		{
			name:       "node with typescript",
			frameworks: []string{"Node.js", "TypeScript"},
			want:       []string{"Node.js + TypeScript"},
		},
		{
			name:       "spring and django composites",
			frameworks: []string{"Django", "Spring"},
			want:       []string{"Django", "Spring Boot"},
		},
		{
			name:      "cloud native from languages and tools",
			tools:     []string{"Docker", "Kubernetes"},
			languages: []string{"Go"},
			want:      []string{"Cloud Native"},
		},
		{
			// A one-letter language is contained in many component names.
			name:      "short language names match loosely",
			languages: []string{"R"},
			want:      []string{"PERN Stack", "Data Science", "Cloud Native"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stats []LanguageStat
			for _, l := range tt.languages {
				stats = append(stats, LanguageStat{Name: l})
			}
			assert.Equal(t, tt.want, detectArchetypes(tt.frameworks, tt.tools, stats))
		})
	}
}

func TestAnalyzeSkills_PrimaryFallsBackToLanguages(t *testing.T) {
	repos := []model.Repository{
		{Name: "a", Languages: map[string]int64{"Go": 900, "Rust": 800, "Shell": 700, "HTML": 600, "CSS": 500, "Lua": 400, "Perl": 300}},
	}

	skills := analyzeSkills(model.Account{}, repos, testNow)

	assert.Empty(t, skills.Archetypes)
	assert.Equal(t, []string{"Go", "Rust", "Shell"}, skills.Primary)
	assert.Equal(t, []string{"HTML", "CSS", "Lua"}, skills.Secondary)
}

func TestBuildStackDepth(t *testing.T) {
	repos := []model.Repository{
		{Name: "storefront", Topics: []string{"react"}, Language: "TypeScript", Languages: map[string]int64{"TypeScript": 500}, CreatedAt: daysAgo(800), UpdatedAt: daysAgo(10)},
		{Name: "admin-panel", Topics: []string{"react", "docker"}, Language: "JavaScript", Languages: map[string]int64{"JavaScript": 300}, CreatedAt: daysAgo(900), UpdatedAt: daysAgo(400)},
		{Name: "scripts", Language: "Shell", Languages: map[string]int64{"Shell": 100}, CreatedAt: daysAgo(1000), UpdatedAt: daysAgo(500)},
		{Name: "lab", Language: "Elixir", Languages: map[string]int64{"Erlang": 50}, CreatedAt: daysAgo(30), UpdatedAt: daysAgo(20)},
	}

	skills := analyzeSkills(model.Account{}, repos, testNow)

	assert.Equal(t, []string{"TypeScript", "JavaScript", "Shell"}, skills.Primary)
	assert.Equal(t, []string{"Erlang"}, skills.Secondary)
	assert.Equal(t, StackDepth{
		Core:       []string{"TypeScript", "JavaScript", "Shell", "React"},
		Supporting: []string{"Docker", "Erlang"},
		Emerging:   []string{"Elixir"},
	}, skills.StackDepth)
}

func TestExperienceLevel(t *testing.T) {
	makeRepos := func(n, updatedDaysAgo, stars int) []model.Repository {
		repos := make([]model.Repository, n)
		for i := range repos {
			repos[i] = model.Repository{Name: fmt.Sprintf("r%d", i), UpdatedAt: daysAgo(updatedDaysAgo), Stars: stars}
		}
		return repos
	}

	tests := []struct {
		name      string
		createdAt int // years before testNow, zero leaves CreatedAt unset
		repos     []model.Repository
		wantLevel ExperienceLevel
		wantScore int
	}{
		{
			name:      "fresh account",
			repos:     makeRepos(1, 300, 0),
			wantLevel: LevelBeginner,
			wantScore: 0,
		},
		{
			name:      "intermediate",
			createdAt: 6,
			repos:     makeRepos(25, 10, 0),
			wantLevel: LevelIntermediate,
			wantScore: 3 + 2 + 3,
		},
		{
			name:      "advanced",
			createdAt: 5,
			repos:     makeRepos(50, 10, 5),
			wantLevel: LevelAdvanced,
			wantScore: 3 + 3 + 3 + 1,
		},
		{
			name:      "expert",
			createdAt: 8,
			repos:     makeRepos(120, 5, 150),
			wantLevel: LevelExpert,
			wantScore: 4 + 4 + 3 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var account model.Account
			if tt.createdAt > 0 {
				// An extra month keeps leap days from pulling the age under the band.
				account.CreatedAt = testNow.AddDate(-tt.createdAt, -1, 0)
			}
			level, score := experienceLevel(account, tt.repos, testNow)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}
