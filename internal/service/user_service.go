package service

import (
	"context"

	"exam-service/internal/models"
)

// UserService is a thin read-only facade over the gateway-owned users
// collection, used by handlers to resolve the student a parent acts for.
type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{Users: users}
}

// ResolveStudentID maps the caller to the student they act for: students act
// for themselves, parents for their linked student. Empty when neither holds.
func (s *UserService) ResolveStudentID(ctx context.Context, callerID, callerRole string) (string, error) {
	switch callerRole {
	case models.RoleStudent:
		return callerID, nil
	case models.RoleParent:
		user, err := s.Users.FindByID(ctx, callerID)
		if err != nil {
			return "", err
		}
		if user == nil {
			return "", ErrUserNotFound
		}
		return user.StudentID, nil
	default:
		return "", nil
	}
}
