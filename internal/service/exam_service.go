package service

import (
	"context"

	"exam-service/internal/models"
)

type ExamService struct {
	Exams ExamStore
	Users UserStore
}

func NewExamService(exams ExamStore, users UserStore) *ExamService {
	return &ExamService{Exams: exams, Users: users}
}

// ListForCaller returns published exams visible to the caller. Students are
// pinned to their own grade; everyone else may filter by grade or see all.
// Correct answers are stripped from every listing.
func (s *ExamService) ListForCaller(ctx context.Context, callerID, callerRole string, grade int) ([]models.Exam, error) {
	if callerRole == models.RoleStudent {
		user, err := s.Users.FindByID(ctx, callerID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		grade = user.Grade
	}

	exams, err := s.Exams.FindPublished(ctx, grade)
	if err != nil {
		return nil, err
	}

	views := make([]models.Exam, 0, len(exams))
	for i := range exams {
		views = append(views, *exams[i].StudentView())
	}
	return views, nil
}
