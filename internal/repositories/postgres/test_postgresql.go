package postgres

import (
	"context"

	"github.com/aulanet/aulanet/internal/models"
	"github.com/aulanet/aulanet/internal/repositories"
	"gorm.io/gorm"
)

type TestPostgreSQL struct {
	db *gorm.DB
}

func NewTestPostgreSQL(db *gorm.DB) repositories.TestRepository {
	return &TestPostgreSQL{db: db}
}

func (t *TestPostgreSQL) CreateWithQuestions(ctx context.Context, test *models.Test) error {
	// gorm persists the nested questions and answers in one statement batch.
	return t.db.WithContext(ctx).Create(test).Error
}

func (t *TestPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Test, error) {
	var test models.Test
	if err := t.db.WithContext(ctx).First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (t *TestPostgreSQL) GetByIDWithQuestions(ctx context.Context, id uint) (*models.Test, error) {
	var test models.Test
	if err := t.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.number")
		}).
		First(&test, id).Error; err != nil {
		return nil, err
	}
	test.QuestionCount = len(test.Questions)
	return &test, nil
}

func (t *TestPostgreSQL) GetByCourseID(ctx context.Context, courseID uint) (*models.Test, error) {
	var test models.Test
	if err := t.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		First(&test).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (t *TestPostgreSQL) GetQuestionForReview(ctx context.Context, testID uint, number int) (*models.Question, error) {
	var question models.Question
	if err := t.db.WithContext(ctx).
		Where("test_id = ? AND number = ?", testID, number).
		Preload("Answers").
		First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (t *TestPostgreSQL) GetQuestionForTaking(ctx context.Context, testID uint, number int) (*models.Question, error) {
	var question models.Question
	if err := t.db.WithContext(ctx).
		Select("id", "test_id", "number", "statement").
		Where("test_id = ? AND number = ?", testID, number).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "question_id", "text")
		}).
		First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (t *TestPostgreSQL) GetAnswer(ctx context.Context, id uint) (*models.Answer, error) {
	var answer models.Answer
	if err := t.db.WithContext(ctx).First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (t *TestPostgreSQL) CountQuestions(ctx context.Context, testID uint) (int64, error) {
	var count int64
	err := t.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("test_id = ?", testID).
		Count(&count).Error
	return count, err
}
