package models

import "time"

const (
	AttemptInProgress = "in_progress"
	AttemptSubmitted  = "submitted"
)

// SkillScore is the per-skill slice of one attempt's result, computed exactly
// once at submit time.
type SkillScore struct {
	Correct    int     `bson:"correct" json:"correct"`
	Total      int     `bson:"total" json:"total"`
	Percentage float64 `bson:"percentage" json:"percentage"`
}

// ExamAttempt is one student's pass at one exam. The (exam_id, student_id)
// pair is the logical key; at most one in_progress and one submitted attempt
// may exist for it.
type ExamAttempt struct {
	ID               string                `bson:"_id,omitempty" json:"id"`
	ExamID           string                `bson:"exam_id" json:"exam_id"`
	StudentID        string                `bson:"student_id" json:"student_id"`
	StartedAt        time.Time             `bson:"started_at" json:"started_at"`
	SubmittedAt      *time.Time            `bson:"submitted_at,omitempty" json:"submitted_at,omitempty"`
	UpdatedAt        time.Time             `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	Answers          map[string]string     `bson:"answers" json:"answers"`
	FlaggedQuestions []string              `bson:"flagged_questions" json:"flagged_questions"`
	TimeRemaining    int                   `bson:"time_remaining" json:"time_remaining"`
	Status           string                `bson:"status" json:"status"`
	Score            int                   `bson:"score,omitempty" json:"score,omitempty"`
	TotalQuestions   int                   `bson:"total_questions,omitempty" json:"total_questions,omitempty"`
	Percentage       float64               `bson:"percentage,omitempty" json:"percentage,omitempty"`
	SkillBreakdown   map[string]SkillScore `bson:"skill_breakdown,omitempty" json:"skill_breakdown,omitempty"`
}

func (a *ExamAttempt) IsFlagged(questionID string) bool {
	for _, id := range a.FlaggedQuestions {
		if id == questionID {
			return true
		}
	}
	return false
}
