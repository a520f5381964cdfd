package analysis

import (
	"strings"
)

const minRoleSkills = 2

// findOpportunities matches job roles and industries against the skill
// analysis and assembles recommendations and next actions.
func findOpportunities(skills SkillAnalysis, quality QualitySignals, activity ActivityMetrics) Opportunities {
	frameworks := newOrderedSet(skills.Frameworks...)
	tools := newOrderedSet(skills.Tools...)
	primary := newOrderedSet(skills.Primary...)

	var roles []string
	for _, entry := range roleLexicon {
		satisfied := 0
		for _, skill := range entry.Skills {
			if hasSkill(skill, skills.Primary, frameworks, tools) {
				satisfied++
			}
		}
		if satisfied >= minRoleSkills {
			roles = append(roles, entry.Role)
		}
	}

	var industries []string
	if frameworks.has("React") || frameworks.has("Angular") || frameworks.has("Vue") {
		industries = append(industries, "Web Development", "SaaS")
	}
	if tools.has("Docker") || tools.has("Kubernetes") || frameworks.has("AWS") {
		industries = append(industries, "Cloud Infrastructure", "DevOps")
	}
	if primary.has("Python") || frameworks.has("TensorFlow") || frameworks.has("PyTorch") || frameworks.has("Pandas") {
		industries = append(industries, "Data & AI", "Research")
	}
	if frameworks.has("Flutter") || primary.has("Kotlin") || primary.has("Swift") || primary.has("Dart") {
		industries = append(industries, "Mobile Apps", "Consumer Tech")
	}
	if primary.has("Java") || frameworks.has("Spring") || frameworks.has(".NET") {
		industries = append(industries, "Enterprise Software", "FinTech")
	}
	if primary.has("Go") || primary.has("Rust") {
		industries = append(industries, "Developer Tools", "Infrastructure")
	}
	if len(industries) == 0 {
		industries = append(industries, "General Software")
	}

	var recommendations, actions []string
	switch skills.ExperienceLevel {
	case LevelBeginner:
		recommendations = append(recommendations,
			"Build end-to-end projects that showcase a complete feature set.",
			"Contribute small fixes to established open-source projects.",
		)
		actions = append(actions,
			"Ship one polished portfolio project this month.",
			"Write a detailed README for your most recent repository.",
		)
	case LevelIntermediate:
		recommendations = append(recommendations,
			"Deepen one core stack and publish projects that go beyond tutorials.",
			"Take ownership of features in a collaborative open-source project.",
		)
		actions = append(actions,
			"Add automated tests and CI to your two most popular repositories.",
			"Write a technical post about a problem you solved recently.",
		)
	case LevelAdvanced, LevelExpert:
		recommendations = append(recommendations,
			"Lead architecture decisions and mentor contributors on your projects.",
			"Position your strongest repositories as reference implementations.",
		)
		actions = append(actions,
			"Publish a roadmap for your flagship project.",
			"Speak or write about your stack to grow your professional reach.",
		)
	}

	if activity.ActiveLast90Days < 3 {
		actions = append(actions, "Revive activity by shipping updates to at least three projects this quarter.")
	}
	if quality.Testing == TestingSparse {
		actions = append(actions, "Add a test suite to your most starred repository.")
	}
	if quality.Automation == AutomationNone {
		actions = append(actions, "Set up a GitHub Actions workflow for builds and tests.")
	}
	if quality.Documentation == DocumentationSparse {
		actions = append(actions, "Expand repository descriptions and add usage guides.")
	}
	if activity.VelocityScore < 40 {
		actions = append(actions, "Commit to a steady weekly cadence to raise delivery velocity.")
	}

	return Opportunities{
		Roles:           dedupe(roles),
		Industries:      dedupe(industries),
		Recommendations: dedupe(recommendations),
		NextActions:     dedupe(actions),
	}
}

// hasSkill reports whether skill appears literally in the primary, framework
// or tool sets, or whether a primary entry is a case-insensitive substring of
// it.
func hasSkill(skill string, primary []string, frameworks, tools *orderedSet) bool {
	if frameworks.has(skill) || tools.has(skill) {
		return true
	}
	lower := strings.ToLower(skill)
	for _, p := range primary {
		if p == skill || strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
