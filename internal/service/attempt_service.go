package service

import (
	"context"
	"time"

	"exam-service/internal/models"
	"exam-service/internal/scoring"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttemptService is the exam attempt state machine. An attempt is created by
// the first start call, mutated by save-answer while in_progress, and
// finalized exactly once by submit. submitted is terminal.
type AttemptService struct {
	Attempts AttemptStore
	Exams    ExamStore
}

func NewAttemptService(attempts AttemptStore, exams ExamStore) *AttemptService {
	return &AttemptService{Attempts: attempts, Exams: exams}
}

// StartResult carries what the start operation hands back to the student: the
// attempt and the exam with correct answers stripped. Resumed distinguishes
// an idempotent resume from a fresh start.
type StartResult struct {
	Attempt *models.ExamAttempt
	Exam    *models.Exam
	Resumed bool
}

// Start begins or resumes the student's attempt at the exam. Resume is
// idempotent: an existing in_progress attempt is returned untouched, with no
// field reset. A submitted attempt blocks any re-attempt.
func (s *AttemptService) Start(ctx context.Context, examID, studentID string) (*StartResult, error) {
	exam, err := s.Exams.FindByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}

	existing, err := s.Attempts.FindInProgress(ctx, examID, studentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &StartResult{Attempt: existing, Exam: exam.StudentView(), Resumed: true}, nil
	}

	completed, err := s.Attempts.FindSubmitted(ctx, examID, studentID)
	if err != nil {
		return nil, err
	}
	if completed != nil {
		return nil, ErrAlreadyCompleted
	}

	attempt := &models.ExamAttempt{
		ID:               primitive.NewObjectID().Hex(),
		ExamID:           examID,
		StudentID:        studentID,
		StartedAt:        time.Now().UTC(),
		Answers:          map[string]string{},
		FlaggedQuestions: []string{},
		TimeRemaining:    exam.DurationMinutes * 60,
		Status:           models.AttemptInProgress,
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}

	return &StartResult{Attempt: attempt, Exam: exam.StudentView()}, nil
}

// SaveAnswer records one answer and the client-reported timer on the active
// attempt. The timer is trusted as-is; monotonic decrease is not enforced.
// Flagging has set semantics: flag twice keeps one entry, unflag an unflagged
// question is a no-op.
func (s *AttemptService) SaveAnswer(ctx context.Context, examID, studentID, questionID, selectedOption string, timeRemaining int, flagged bool) error {
	matched, err := s.Attempts.SaveAnswer(ctx, examID, studentID, questionID, selectedOption, timeRemaining, flagged)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNoActiveAttempt
	}
	return nil
}

// Submit scores the active attempt against the full exam question set and
// transitions it to submitted. The store transition only fires while the
// attempt is still in_progress, so a concurrent duplicate submit surfaces as
// ErrNoActiveAttempt rather than scoring twice.
func (s *AttemptService) Submit(ctx context.Context, examID, studentID string, timeRemaining int) (*scoring.Result, error) {
	attempt, err := s.Attempts.FindInProgress(ctx, examID, studentID)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, ErrNoActiveAttempt
	}

	exam, err := s.Exams.FindByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}

	result := scoring.Score(exam.Questions, attempt.Answers)

	matched, err := s.Attempts.Submit(ctx, examID, studentID, result, timeRemaining, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrNoActiveAttempt
	}
	return &result, nil
}
