package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"exam-service/internal/models"
	"exam-service/internal/scoring"
)

// In-memory stores mirroring the mongo repositories' semantics, including the
// status-filtered writes the state machine relies on.

type memExamStore struct {
	exams map[string]models.Exam
}

func newMemExamStore(exams ...models.Exam) *memExamStore {
	m := &memExamStore{exams: map[string]models.Exam{}}
	for _, e := range exams {
		m.exams[e.ID] = e
	}
	return m
}

func (m *memExamStore) FindByID(ctx context.Context, id string) (*models.Exam, error) {
	e, ok := m.exams[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *memExamStore) FindPublished(ctx context.Context, grade int) ([]models.Exam, error) {
	var out []models.Exam
	for _, e := range m.exams {
		if !e.Published {
			continue
		}
		if grade > 0 && e.Grade != grade {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type memAttemptStore struct {
	attempts map[string]*models.ExamAttempt
}

func newMemAttemptStore() *memAttemptStore {
	return &memAttemptStore{attempts: map[string]*models.ExamAttempt{}}
}

func (m *memAttemptStore) find(examID, studentID, status string) *models.ExamAttempt {
	for _, a := range m.attempts {
		if a.ExamID == examID && a.StudentID == studentID && a.Status == status {
			return a
		}
	}
	return nil
}

func (m *memAttemptStore) FindInProgress(ctx context.Context, examID, studentID string) (*models.ExamAttempt, error) {
	a := m.find(examID, studentID, models.AttemptInProgress)
	if a == nil {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *memAttemptStore) FindSubmitted(ctx context.Context, examID, studentID string) (*models.ExamAttempt, error) {
	a := m.find(examID, studentID, models.AttemptSubmitted)
	if a == nil {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *memAttemptStore) FindSubmittedByStudent(ctx context.Context, studentID string) ([]models.ExamAttempt, error) {
	var out []models.ExamAttempt
	for _, a := range m.attempts {
		if a.StudentID == studentID && a.Status == models.AttemptSubmitted {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.Before(*out[j].SubmittedAt)
	})
	return out, nil
}

func (m *memAttemptStore) Create(ctx context.Context, attempt *models.ExamAttempt) error {
	copied := *attempt
	m.attempts[attempt.ID] = &copied
	return nil
}

func (m *memAttemptStore) SaveAnswer(ctx context.Context, examID, studentID, questionID, selectedOption string, timeRemaining int, flagged bool) (bool, error) {
	a := m.find(examID, studentID, models.AttemptInProgress)
	if a == nil {
		return false, nil
	}

	if a.Answers == nil {
		a.Answers = map[string]string{}
	}
	a.Answers[questionID] = selectedOption
	a.TimeRemaining = timeRemaining
	a.UpdatedAt = time.Now().UTC()

	if flagged {
		if !a.IsFlagged(questionID) {
			a.FlaggedQuestions = append(a.FlaggedQuestions, questionID)
		}
	} else {
		kept := a.FlaggedQuestions[:0]
		for _, id := range a.FlaggedQuestions {
			if id != questionID {
				kept = append(kept, id)
			}
		}
		a.FlaggedQuestions = kept
	}
	return true, nil
}

func (m *memAttemptStore) Submit(ctx context.Context, examID, studentID string, result scoring.Result, timeRemaining int, submittedAt time.Time) (bool, error) {
	a := m.find(examID, studentID, models.AttemptInProgress)
	if a == nil {
		return false, nil
	}
	a.Status = models.AttemptSubmitted
	a.SubmittedAt = &submittedAt
	a.Score = result.Score
	a.TotalQuestions = result.TotalQuestions
	a.Percentage = result.Percentage
	a.SkillBreakdown = result.SkillBreakdown
	a.TimeRemaining = timeRemaining
	return true, nil
}

type memPaper2Store struct {
	subs   map[string]*models.Paper2Submission
	nextID int
}

func newMemPaper2Store() *memPaper2Store {
	return &memPaper2Store{subs: map[string]*models.Paper2Submission{}}
}

func (m *memPaper2Store) FindByID(ctx context.Context, id string) (*models.Paper2Submission, error) {
	s, ok := m.subs[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (m *memPaper2Store) FindByExamStudent(ctx context.Context, examID, studentID string) (*models.Paper2Submission, error) {
	for _, s := range m.subs {
		if s.ExamID == examID && s.StudentID == studentID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memPaper2Store) FindAll(ctx context.Context, status string) ([]models.Paper2Submission, error) {
	var out []models.Paper2Submission
	for _, s := range m.subs {
		if status != "" && s.Status != status {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (m *memPaper2Store) SubmitFiles(ctx context.Context, examID, studentID string, files []string, submittedAt time.Time) (*models.Paper2Submission, error) {
	for _, s := range m.subs {
		if s.ExamID == examID && s.StudentID == studentID {
			s.Files = files
			s.SubmittedAt = submittedAt
			s.Status = models.Paper2Submitted
			s.Score = 0
			s.Feedback = ""
			s.SkillScores = nil
			s.ScoredBy = ""
			s.ScoredAt = nil
			copied := *s
			return &copied, nil
		}
	}

	m.nextID++
	sub := &models.Paper2Submission{
		ID:          fmt.Sprintf("sub-%d", m.nextID),
		ExamID:      examID,
		StudentID:   studentID,
		Files:       files,
		SubmittedAt: submittedAt,
		Status:      models.Paper2Submitted,
	}
	m.subs[sub.ID] = sub
	copied := *sub
	return &copied, nil
}

func (m *memPaper2Store) Score(ctx context.Context, id string, skillScores map[string]int, totalScore int, feedback, status, scoredBy string, scoredAt time.Time) (bool, error) {
	s, ok := m.subs[id]
	if !ok {
		return false, nil
	}
	s.SkillScores = skillScores
	s.Score = totalScore
	s.Feedback = feedback
	s.Status = status
	s.ScoredBy = scoredBy
	s.ScoredAt = &scoredAt
	return true, nil
}

type memUserStore struct {
	users map[string]models.User
}

func newMemUserStore(users ...models.User) *memUserStore {
	m := &memUserStore{users: map[string]models.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
