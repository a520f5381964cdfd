package analysis

// Comparison contrasts two independently produced reports.
type Comparison struct {
	SharedSkills     []string           `json:"sharedSkills" yaml:"shared_skills"`
	OnlyPrimary      []string           `json:"onlyPrimary" yaml:"only_primary"`
	OnlyOther        []string           `json:"onlyOther" yaml:"only_other"`
	VelocityDelta    int                `json:"velocityDelta" yaml:"velocity_delta"`
	ExperienceLevels [2]ExperienceLevel `json:"experienceLevels" yaml:"experience_levels"`
}

// Compare reports the skills two profiles share and those unique to each
// side. A skill is anything in the core or supporting tier.
func Compare(primary, other *Result) Comparison {
	a := skillSet(primary)
	b := skillSet(other)

	cmp := Comparison{
		SharedSkills:     []string{},
		OnlyPrimary:      []string{},
		OnlyOther:        []string{},
		VelocityDelta:    primary.Activity.VelocityScore - other.Activity.VelocityScore,
		ExperienceLevels: [2]ExperienceLevel{primary.Skills.ExperienceLevel, other.Skills.ExperienceLevel},
	}
	for _, skill := range a.items {
		if b.has(skill) {
			cmp.SharedSkills = append(cmp.SharedSkills, skill)
		} else {
			cmp.OnlyPrimary = append(cmp.OnlyPrimary, skill)
		}
	}
	for _, skill := range b.items {
		if !a.has(skill) {
			cmp.OnlyOther = append(cmp.OnlyOther, skill)
		}
	}
	return cmp
}

func skillSet(r *Result) *orderedSet {
	s := newOrderedSet(r.Skills.StackDepth.Core...)
	s.add(r.Skills.StackDepth.Supporting...)
	return s
}
