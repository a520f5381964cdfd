package analysis

// forecast projects growth areas, skills to learn, a career ladder and market
// demand.
func forecast(skills SkillAnalysis, quality QualitySignals, activity ActivityMetrics) FuturePrediction {
	frameworks := newOrderedSet(skills.Frameworks...)
	tools := newOrderedSet(skills.Tools...)
	primary := newOrderedSet(skills.Primary...)

	demand := DemandMedium
	if activity.VelocityScore >= 70 || quality.Automation == AutomationAdvanced {
		demand = DemandVeryHigh
	}
	if activity.VelocityScore >= 50 && demand != DemandVeryHigh {
		demand = DemandHigh
	}

	var growth, learn []string
	if primary.has("JavaScript") || primary.has("TypeScript") || frameworks.has("TypeScript") || frameworks.has("Node.js") {
		growth = append(growth, "Full-stack TypeScript platforms", "Edge and serverless runtimes")
		learn = append(learn, "Next.js", "GraphQL")
	}
	if primary.has("Python") || frameworks.has("Django") || frameworks.has("Pandas") {
		growth = append(growth, "Applied machine learning", "Data engineering")
		learn = append(learn, "PyTorch", "MLOps")
	}
	if tools.has("Docker") || tools.has("Kubernetes") {
		growth = append(growth, "Platform engineering", "Cloud-native infrastructure")
		learn = append(learn, "Terraform", "Observability")
	}
	if frameworks.has("React") || frameworks.has("Vue") || frameworks.has("Angular") {
		growth = append(growth, "Design systems", "Web performance")
		learn = append(learn, "Accessibility", "End-to-end testing")
	}
	if len(growth) == 0 {
		growth = append(growth, "Cloud computing", "AI-assisted development")
		learn = append(learn, "TypeScript", "Docker", "Python")
	}

	var path []string
	switch skills.ExperienceLevel {
	case LevelBeginner:
		path = []string{"Junior Developer", "Software Engineer", "Senior Software Engineer"}
	case LevelIntermediate:
		path = []string{"Software Engineer", "Senior Software Engineer", "Tech Lead"}
	case LevelAdvanced, LevelExpert:
		path = []string{"Senior Software Engineer", "Staff Engineer", "Principal Engineer"}
	}

	return FuturePrediction{
		GrowthAreas:   dedupe(growth),
		SkillsToLearn: dedupe(learn),
		CareerPath:    dedupe(path),
		MarketDemand:  demand,
	}
}
