package services

import "errors"

// ===== COMMON SERVICE ERRORS =====

var (
	// Referential lookup failures, mapped to "not found" responses.
	ErrCourseNotFound          = errors.New("course not found")
	ErrTestNotFound            = errors.New("test not found")
	ErrAttemptNotFound         = errors.New("attempt not found")
	ErrQuestionAttemptNotFound = errors.New("question attempt not found")
	ErrAnswerNotFound          = errors.New("answer not found")
	ErrAchievementNotFound     = errors.New("achievement not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrReminderNotFound        = errors.New("reminder not found")

	// State-machine precondition violations, mapped to "conflict" responses.
	ErrQuestionAlreadyAnswered = errors.New("question already answered in this attempt")
	ErrAttemptAlreadyFinished  = errors.New("attempt already finished")
	ErrUnansweredQuestions     = errors.New("attempt has unanswered questions")
	ErrAttemptNotFinished      = errors.New("attempt is not finished")
	ErrEmailTaken              = errors.New("email already registered")
	ErrTestExists              = errors.New("course already has a test")

	// Authentication failures.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrValidationFailed = errors.New("validation failed")
)

// IsNotFound checks if err represents a "not found" condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrTestNotFound) ||
		errors.Is(err, ErrAttemptNotFound) ||
		errors.Is(err, ErrQuestionAttemptNotFound) ||
		errors.Is(err, ErrAnswerNotFound) ||
		errors.Is(err, ErrAchievementNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrReminderNotFound)
}

// IsConflict checks if err represents a state-machine precondition violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrQuestionAlreadyAnswered) ||
		errors.Is(err, ErrAttemptAlreadyFinished) ||
		errors.Is(err, ErrUnansweredQuestions) ||
		errors.Is(err, ErrAttemptNotFinished) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrTestExists)
}

// IsUnauthorized checks if err represents an authentication failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
