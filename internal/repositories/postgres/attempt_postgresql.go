package postgres

import (
	"context"

	"github.com/aulanet/aulanet/internal/models"
	"github.com/aulanet/aulanet/internal/repositories"
	"gorm.io/gorm"
)

type AttemptPostgreSQL struct {
	db *gorm.DB
}

func NewAttemptPostgreSQL(db *gorm.DB) repositories.AttemptRepository {
	return &AttemptPostgreSQL{db: db}
}

func (a *AttemptPostgreSQL) Create(ctx context.Context, attempt *models.TestAttempt) error {
	// Nested question attempts are inserted in the same create.
	return a.db.WithContext(ctx).Create(attempt).Error
}

func (a *AttemptPostgreSQL) GetByIDForUser(ctx context.Context, id, userID uint) (*models.TestAttempt, error) {
	var attempt models.TestAttempt
	if err := a.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Preload("Test").
		Preload("QuestionAttempts").
		First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a *AttemptPostgreSQL) GetByIDWithDetails(ctx context.Context, id uint) (*models.TestAttempt, error) {
	var attempt models.TestAttempt
	if err := a.db.WithContext(ctx).
		Preload("Test").
		Preload("QuestionAttempts").
		First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a *AttemptPostgreSQL) GetByTestAndUser(ctx context.Context, testID, userID uint) ([]*models.TestAttempt, error) {
	var attempts []*models.TestAttempt
	if err := a.db.WithContext(ctx).
		Where("test_id = ? AND user_id = ?", testID, userID).
		Order("id").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (a *AttemptPostgreSQL) Update(ctx context.Context, attempt *models.TestAttempt) error {
	return a.db.WithContext(ctx).Save(attempt).Error
}

func (a *AttemptPostgreSQL) FindQuestionAttempt(ctx context.Context, attemptID uint, questionNumber int, userID uint) (*models.QuestionAttempt, error) {
	var qa models.QuestionAttempt
	if err := a.db.WithContext(ctx).
		Joins("JOIN test_attempts ON test_attempts.id = question_attempts.attempt_id").
		Joins("JOIN questions ON questions.id = question_attempts.question_id").
		Where("question_attempts.attempt_id = ? AND test_attempts.user_id = ? AND questions.number = ?",
			attemptID, userID, questionNumber).
		Preload("Attempt").
		Preload("Question").
		First(&qa).Error; err != nil {
		return nil, err
	}
	return &qa, nil
}

func (a *AttemptPostgreSQL) UpdateQuestionAttempt(ctx context.Context, qa *models.QuestionAttempt) error {
	return a.db.WithContext(ctx).
		Model(&models.QuestionAttempt{}).
		Where("id = ?", qa.ID).
		Updates(map[string]interface{}{
			"answer_id":   qa.AnswerID,
			"answered_at": qa.AnsweredAt,
		}).Error
}

func (a *AttemptPostgreSQL) CountQuestionAttempts(ctx context.Context, attemptID uint) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&models.QuestionAttempt{}).
		Where("attempt_id = ?", attemptID).
		Count(&count).Error
	return count, err
}

func (a *AttemptPostgreSQL) DeleteUnfinishedByUser(ctx context.Context, userID uint) error {
	return a.db.WithContext(ctx).
		Where("user_id = ? AND finished = ?", userID, false).
		Delete(&models.TestAttempt{}).Error
}
