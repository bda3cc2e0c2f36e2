package service

import (
	"context"

	"exam-service/internal/models"
	"exam-service/internal/progress"
)

type ProgressService struct {
	Attempts AttemptStore
	Users    UserStore
}

func NewProgressService(attempts AttemptStore, users UserStore) *ProgressService {
	return &ProgressService{Attempts: attempts, Users: users}
}

// GetProgress aggregates the student's submitted attempt history. An empty
// history is a valid zero-valued summary, not an error. The scan is O(n) in
// attempt count and uncached; per-student volumes are tens, not millions.
func (s *ProgressService) GetProgress(ctx context.Context, studentID string) (*models.ProgressSummary, error) {
	attempts, err := s.Attempts.FindSubmittedByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	summary := progress.Aggregate(studentID, attempts)
	return &summary, nil
}

// CanView reports whether the caller may read the student's progress.
// Students see themselves, parents see their linked student, teachers and
// admins see everyone.
func (s *ProgressService) CanView(ctx context.Context, callerID, callerRole, studentID string) (bool, error) {
	switch callerRole {
	case models.RoleTeacher, models.RoleAdmin:
		return true, nil
	case models.RoleStudent:
		return callerID == studentID, nil
	case models.RoleParent:
		user, err := s.Users.FindByID(ctx, callerID)
		if err != nil {
			return false, err
		}
		return user != nil && user.StudentID == studentID, nil
	default:
		return false, nil
	}
}
