package analysis

import (
	"sort"
	"time"

	"github-skill-analyzer/internal/model"
)

const (
	maxTopLanguages = 10
	maxArchetypes   = 4
	maxCoreSeed     = 4
	primaryCount    = 3
	secondaryEnd    = 6
)

// techDetection is the outcome of running every lexicon over every
// repository.
type techDetection struct {
	frameworks []string
	tools      []string
	repoCounts map[string]int
	recent     map[string]bool
}

// analyzeSkills runs the skill aggregation over the whole repository set.
func analyzeSkills(account model.Account, repos []model.Repository, now time.Time) SkillAnalysis {
	languages := languageDistribution(repos)
	det := detectTechnologies(repos, now)
	archetypes := detectArchetypes(det.frameworks, det.tools, languages)

	primary := archetypes
	if len(primary) == 0 {
		primary = languageNames(languages, 0, primaryCount)
	}
	secondary := languageNames(languages, primaryCount, secondaryEnd)

	level, score := experienceLevel(account, repos, now)

	return SkillAnalysis{
		TopLanguages:    languages,
		Primary:         primary,
		Secondary:       secondary,
		Frameworks:      det.frameworks,
		Tools:           det.tools,
		Archetypes:      archetypes,
		StackDepth:      buildStackDepth(primary, secondary, det, repos, now),
		ExperienceLevel: level,
		ExperienceScore: score,
	}
}

// languageDistribution sums language bytes across repositories and returns
// the ten largest shares. Equal shares keep encounter order.
func languageDistribution(repos []model.Repository) []LanguageStat {
	totals := make(map[string]int64)
	var order []string
	var total int64

	for _, repo := range repos {
		bytes := repo.LanguageBytes()
		for _, name := range repo.OrderedLanguages() {
			if _, seen := totals[name]; !seen {
				order = append(order, name)
			}
			totals[name] += bytes[name]
			total += bytes[name]
		}
	}

	if total <= 0 {
		return []LanguageStat{}
	}

	stats := make([]LanguageStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, LanguageStat{
			Name:       name,
			Bytes:      totals[name],
			Percentage: float64(totals[name]) / float64(total) * 100,
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Percentage > stats[j].Percentage
	})

	if len(stats) > maxTopLanguages {
		stats = stats[:maxTopLanguages]
	}
	return stats
}

func languageNames(stats []LanguageStat, from, to int) []string {
	names := []string{}
	for i := from; i < to && i < len(stats); i++ {
		names = append(names, stats[i].Name)
	}
	return names
}

// detectTechnologies matches the technology and tool lexicons against every
// repository. A technology is recent when a repository it was detected in was
// updated within the last twelve months.
func detectTechnologies(repos []model.Repository, now time.Time) techDetection {
	det := techDetection{
		repoCounts: make(map[string]int),
		recent:     make(map[string]bool),
	}
	frameworks := newOrderedSet()
	tools := newOrderedSet()
	cutoff := now.AddDate(-1, 0, 0)

	for _, repo := range repos {
		text := haystack(repo)
		for _, name := range detect(text, technologyLexicon) {
			frameworks.add(name)
			det.repoCounts[name]++
			if !repo.UpdatedAt.Before(cutoff) {
				det.recent[name] = true
			}
		}
		tools.add(detect(text, toolLexicon)...)
	}

	// Frameworks come out in lexicon order rather than discovery order.
	det.frameworks = []string{}
	for _, entry := range technologyLexicon {
		if frameworks.has(entry.Name) {
			det.frameworks = append(det.frameworks, entry.Name)
		}
	}
	det.tools = []string{}
	for _, entry := range toolLexicon {
		if tools.has(entry.Name) {
			det.tools = append(det.tools, entry.Name)
		}
	}
	return det
}

// detectArchetypes matches the stack patterns against everything detected so
// far, then applies the composite rules. Pattern matches come first and the
// list is capped at four.
func detectArchetypes(frameworks, tools []string, languages []LanguageStat) []string {
	detected := newOrderedSet(frameworks...)
	detected.add(tools...)
	for _, lang := range languages {
		detected.add(lang.Name)
	}

	found := newOrderedSet()
	for _, pattern := range stackPatterns {
		present := 0
		for _, component := range pattern.Components {
			for _, name := range detected.items {
				if fuzzyContains(name, component) {
					present++
					break
				}
			}
		}
		need := 2
		if len(pattern.Components) >= 4 {
			need = 3
		}
		if present >= need {
			found.add(pattern.Name)
		}
	}

	has := detected.has
	react, next := has("React"), has("Next.js")
	backend := has("Node.js") || has("Express")

	switch {
	case react && has("Vite"):
		found.add("React + Vite")
	case react && next:
		found.add("Next.js")
	}
	if has("Vue") && has("Vite") {
		found.add("Vue + Vite")
	}
	if has("Angular") {
		found.add("Angular")
	}
	if backend {
		if has("TypeScript") {
			found.add("Node.js + TypeScript")
		} else {
			found.add("Node.js + Express")
		}
	}
	if has("Django") {
		found.add("Django")
	}
	if has("Spring") {
		found.add("Spring Boot")
	}
	if (react || next) && backend && !found.has("MERN Stack") && !found.has("PERN Stack") {
		if has("MongoDB") {
			found.add("MERN Stack")
		} else if has("PostgreSQL") {
			found.add("PERN Stack")
		}
	}

	archetypes := found.list()
	if len(archetypes) > maxArchetypes {
		archetypes = archetypes[:maxArchetypes]
	}
	return archetypes
}

// buildStackDepth tiers technologies into core, supporting and emerging.
func buildStackDepth(primary, secondary []string, det techDetection, repos []model.Repository, now time.Time) StackDepth {
	core := newOrderedSet()
	for i, name := range primary {
		if i >= maxCoreSeed {
			break
		}
		core.add(name)
	}

	supporting := newOrderedSet()
	for _, entry := range technologyLexicon {
		switch count := det.repoCounts[entry.Name]; {
		case count >= 2:
			core.add(entry.Name)
		case count == 1:
			supporting.add(entry.Name)
		}
	}
	for _, name := range append(append([]string{}, secondary...), det.tools...) {
		if !core.has(name) {
			supporting.add(name)
		}
	}

	known := func(name string) bool { return core.has(name) || supporting.has(name) }

	emerging := newOrderedSet()
	for _, entry := range technologyLexicon {
		if det.recent[entry.Name] && !known(entry.Name) {
			emerging.add(entry.Name)
		}
	}
	cutoff := now.AddDate(-1, 0, 0)
	for _, repo := range repos {
		if repo.Language == "" || known(repo.Language) {
			continue
		}
		if !repo.UpdatedAt.Before(cutoff) || !repo.CreatedAt.Before(cutoff) {
			emerging.add(repo.Language)
		}
	}

	support := []string{}
	for _, name := range supporting.items {
		if !core.has(name) {
			support = append(support, name)
		}
	}

	return StackDepth{
		Core:       core.list(),
		Supporting: support,
		Emerging:   emerging.list(),
	}
}

// experienceLevel scores account age, project count, recent activity and
// mean stars into a level.
func experienceLevel(account model.Account, repos []model.Repository, now time.Time) (ExperienceLevel, int) {
	var years float64
	if !account.CreatedAt.IsZero() {
		years = now.Sub(account.CreatedAt).Hours() / 24 / 365.25
	}

	activeCutoff := now.AddDate(0, -6, 0)
	active, stars := 0, 0
	for _, repo := range repos {
		if !repo.UpdatedAt.Before(activeCutoff) {
			active++
		}
		stars += repo.Stars
	}
	var meanStars float64
	if len(repos) > 0 {
		meanStars = float64(stars) / float64(len(repos))
	}

	score := band(years, []float64{7, 5, 3, 1}, []int{4, 3, 2, 1}) +
		band(float64(len(repos)), []float64{100, 50, 20, 10}, []int{4, 3, 2, 1}) +
		band(float64(active), []float64{20, 10, 5}, []int{3, 2, 1}) +
		band(meanStars, []float64{100, 50, 20, 5}, []int{4, 3, 2, 1})

	switch {
	case score >= 12:
		return LevelExpert, score
	case score >= 9:
		return LevelAdvanced, score
	case score >= 6:
		return LevelIntermediate, score
	default:
		return LevelBeginner, score
	}
}

// band returns the points of the first threshold v reaches. Thresholds are
// in descending order.
func band(v float64, thresholds []float64, points []int) int {
	for i, t := range thresholds {
		if v >= t {
			return points[i]
		}
	}
	return 0
}
