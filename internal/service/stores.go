package service

import (
	"context"
	"time"

	"exam-service/internal/models"
	"exam-service/internal/scoring"
)

// Store interfaces owned by the services that consume them. The mongo
// repositories satisfy these; tests run against in-memory fakes. Absent
// documents are (nil, nil), not errors.

type ExamStore interface {
	FindByID(ctx context.Context, id string) (*models.Exam, error)
	FindPublished(ctx context.Context, grade int) ([]models.Exam, error)
}

type AttemptStore interface {
	FindInProgress(ctx context.Context, examID, studentID string) (*models.ExamAttempt, error)
	FindSubmitted(ctx context.Context, examID, studentID string) (*models.ExamAttempt, error)
	FindSubmittedByStudent(ctx context.Context, studentID string) ([]models.ExamAttempt, error)
	Create(ctx context.Context, attempt *models.ExamAttempt) error
	SaveAnswer(ctx context.Context, examID, studentID, questionID, selectedOption string, timeRemaining int, flagged bool) (bool, error)
	Submit(ctx context.Context, examID, studentID string, result scoring.Result, timeRemaining int, submittedAt time.Time) (bool, error)
}

type Paper2Store interface {
	FindByID(ctx context.Context, id string) (*models.Paper2Submission, error)
	FindByExamStudent(ctx context.Context, examID, studentID string) (*models.Paper2Submission, error)
	FindAll(ctx context.Context, status string) ([]models.Paper2Submission, error)
	SubmitFiles(ctx context.Context, examID, studentID string, files []string, submittedAt time.Time) (*models.Paper2Submission, error)
	Score(ctx context.Context, id string, skillScores map[string]int, totalScore int, feedback, status, scoredBy string, scoredAt time.Time) (bool, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}
