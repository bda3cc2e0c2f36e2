package models

// Skill is one of the ten fixed categories used to bucket questions for
// diagnostic reporting. Questions are validated against this set at authoring
// time; the scoring engine never invents buckets outside it.
type Skill string

const (
	SkillMathematicalReasoning Skill = "Mathematical Reasoning"
	SkillLanguageProficiency   Skill = "Language Proficiency"
	SkillGeneralKnowledge      Skill = "General Knowledge"
	SkillComprehension         Skill = "Comprehension Skills"
	SkillProblemSolving        Skill = "Problem Solving"
	SkillLogicalThinking       Skill = "Logical Thinking"
	SkillSpatialReasoning      Skill = "Spatial Reasoning"
	SkillMemoryRecall          Skill = "Memory & Recall"
	SkillAnalytical            Skill = "Analytical Skills"
	SkillCriticalThinking      Skill = "Critical Thinking"
)

var AllSkills = []Skill{
	SkillMathematicalReasoning,
	SkillLanguageProficiency,
	SkillGeneralKnowledge,
	SkillComprehension,
	SkillProblemSolving,
	SkillLogicalThinking,
	SkillSpatialReasoning,
	SkillMemoryRecall,
	SkillAnalytical,
	SkillCriticalThinking,
}

var skillDisplayNames = map[Skill]string{
	SkillMathematicalReasoning: "Mathematical Reasoning",
	SkillLanguageProficiency:   "Language Proficiency",
	SkillGeneralKnowledge:      "General Knowledge",
	SkillComprehension:         "Comprehension Skills",
	SkillProblemSolving:        "Problem Solving",
	SkillLogicalThinking:       "Logical Thinking",
	SkillSpatialReasoning:      "Spatial Reasoning",
	SkillMemoryRecall:          "Memory & Recall",
	SkillAnalytical:            "Analytical Skills",
	SkillCriticalThinking:      "Critical Thinking",
}

func (s Skill) IsValid() bool {
	_, ok := skillDisplayNames[s]
	return ok
}

func (s Skill) DisplayName() string {
	if name, ok := skillDisplayNames[s]; ok {
		return name
	}
	return string(s)
}
