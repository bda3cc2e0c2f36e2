package models

// SkillSummary aggregates one skill across a student's submitted attempts.
// AveragePercentage is the unweighted mean of the per-attempt percentages,
// unlike the overall average which is weighted by question count.
type SkillSummary struct {
	AveragePercentage float64 `json:"average_percentage"`
	Correct           int     `json:"correct"`
	Total             int     `json:"total"`
}

type ProgressSummary struct {
	StudentID    string                  `json:"student_id"`
	TotalExams   int                     `json:"total_exams"`
	AverageScore float64                 `json:"average_score"`
	SkillSummary map[string]SkillSummary `json:"skill_summary"`
	Attempts     []ExamAttempt           `json:"attempts"`
}
