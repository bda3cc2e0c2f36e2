package service

import "errors"

// Core error taxonomy. All deterministic; handlers map them to HTTP statuses
// and anything else is treated as an opaque store failure.
var (
	// NotFound class
	ErrExamNotFound       = errors.New("exam not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrUserNotFound       = errors.New("user not found")

	// Conflict class: a submitted attempt already exists for the pair.
	ErrAlreadyCompleted = errors.New("exam already completed")

	// InvalidState class: the operation needs an in_progress attempt.
	ErrNoActiveAttempt = errors.New("exam attempt not found")
)
