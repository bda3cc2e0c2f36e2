package models

import "time"

type Question struct {
	ID            string   `bson:"id" json:"id"`
	Text          string   `bson:"text" json:"text"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer string   `bson:"correct_answer" json:"correct_answer,omitempty"`
	Skill         Skill    `bson:"skill" json:"skill"`
}

type Exam struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	Title           string     `bson:"title" json:"title"`
	Description     string     `bson:"description" json:"description"`
	Grade           int        `bson:"grade" json:"grade"`
	Paper           int        `bson:"paper" json:"paper"`
	DurationMinutes int        `bson:"duration_minutes" json:"duration_minutes"`
	TotalMarks      int        `bson:"total_marks" json:"total_marks"`
	Questions       []Question `bson:"questions" json:"questions"`
	Published       bool       `bson:"published" json:"published"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
}

// StudentView returns a copy of the exam with every correct answer stripped.
// This is the only exam shape allowed to reach a student while an attempt is
// still in progress; the answer key stays inside the scoring engine.
func (e *Exam) StudentView() *Exam {
	view := *e
	view.Questions = make([]Question, len(e.Questions))
	for i, q := range e.Questions {
		q.CorrectAnswer = ""
		view.Questions[i] = q
	}
	return &view
}
