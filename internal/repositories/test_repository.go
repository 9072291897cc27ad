package repositories

import (
	"context"

	"github.com/aulanet/aulanet/internal/models"
)

type TestRepository interface {
	// CreateWithQuestions persists a test together with its nested questions
	// and answers.
	CreateWithQuestions(ctx context.Context, test *models.Test) error

	GetByID(ctx context.Context, id uint) (*models.Test, error)
	GetByIDWithQuestions(ctx context.Context, id uint) (*models.Test, error)
	GetByCourseID(ctx context.Context, courseID uint) (*models.Test, error)

	// GetQuestionForReview loads a question by ordinal with feedback and each
	// answer's correctness flag included (post-answer view).
	GetQuestionForReview(ctx context.Context, testID uint, number int) (*models.Question, error)
	// GetQuestionForTaking loads the same question with feedback and
	// correctness redacted (pre-answer view).
	GetQuestionForTaking(ctx context.Context, testID uint, number int) (*models.Question, error)

	GetAnswer(ctx context.Context, id uint) (*models.Answer, error)
	CountQuestions(ctx context.Context, testID uint) (int64, error)
}
