package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository aggregates the per-entity repositories and the transaction
// boundary. Services depend on this interface only.
type Repository interface {
	Course() CourseRepository
	Test() TestRepository
	Attempt() AttemptRepository
	User() UserRepository
	Achievement() AchievementRepository
	Reminder() ReminderRepository

	// WithTransaction runs fn against a Repository bound to a single database
	// transaction, committing on nil return and rolling back otherwise.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// IsNotFoundError reports whether err is the store's missing-row condition.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
