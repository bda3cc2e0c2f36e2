package models

import "time"

const (
	Paper2Submitted = "submitted"
	Paper2Draft     = "draft"
	Paper2Scored    = "scored"
)

// Paper2Submission holds the photographed answer sheets for the manually
// graded paper. One document per (exam_id, student_id), upserted on every
// re-submission. Scoring fields are only present after a teacher has graded
// the current file set; re-submitting clears them.
type Paper2Submission struct {
	ID          string         `bson:"_id,omitempty" json:"id"`
	ExamID      string         `bson:"exam_id" json:"exam_id"`
	StudentID   string         `bson:"student_id" json:"student_id"`
	Files       []string       `bson:"files" json:"files"`
	SubmittedAt time.Time      `bson:"submitted_at" json:"submitted_at"`
	Status      string         `bson:"status" json:"status"`
	Score       int            `bson:"score,omitempty" json:"score,omitempty"`
	Feedback    string         `bson:"feedback,omitempty" json:"feedback,omitempty"`
	SkillScores map[string]int `bson:"skill_scores,omitempty" json:"skill_scores,omitempty"`
	ScoredBy    string         `bson:"scored_by,omitempty" json:"scored_by,omitempty"`
	ScoredAt    *time.Time     `bson:"scored_at,omitempty" json:"scored_at,omitempty"`
}

// Paper2ListItem is a queue entry for teacher review, enriched with student
// and exam data the submission document does not carry.
type Paper2ListItem struct {
	Paper2Submission `bson:",inline"`
	StudentName      string `json:"student_name"`
	StudentGrade     int    `json:"student_grade,omitempty"`
	ExamTitle        string `json:"exam_title"`
}
