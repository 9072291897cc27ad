package repositories

import (
	"context"

	"github.com/aulanet/aulanet/internal/models"
)

type AttemptRepository interface {
	// Create persists an attempt together with its nested question attempts.
	Create(ctx context.Context, attempt *models.TestAttempt) error

	GetByIDForUser(ctx context.Context, id, userID uint) (*models.TestAttempt, error)
	// GetByIDWithDetails loads the attempt with its test and question attempts.
	GetByIDWithDetails(ctx context.Context, id uint) (*models.TestAttempt, error)
	GetByTestAndUser(ctx context.Context, testID, userID uint) ([]*models.TestAttempt, error)

	Update(ctx context.Context, attempt *models.TestAttempt) error

	// FindQuestionAttempt resolves the question attempt for (attempt, question
	// ordinal) scoped to the owning user, with its attempt and question loaded.
	FindQuestionAttempt(ctx context.Context, attemptID uint, questionNumber int, userID uint) (*models.QuestionAttempt, error)
	UpdateQuestionAttempt(ctx context.Context, qa *models.QuestionAttempt) error
	CountQuestionAttempts(ctx context.Context, attemptID uint) (int64, error)

	// DeleteUnfinishedByUser reclaims the user's abandoned attempts. Scoped to
	// one user; question attempts go with them via cascade.
	DeleteUnfinishedByUser(ctx context.Context, userID uint) error
}
