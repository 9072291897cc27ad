package services

import (
	"context"
	"testing"
	"time"

	"github.com/aulanet/aulanet/internal/events"
	"github.com/aulanet/aulanet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func finishedAttempt(score float64) *models.TestAttempt {
	finishedAt := time.Now()
	return &models.TestAttempt{
		ID:         1,
		TestID:     7,
		UserID:     42,
		Finished:   true,
		Score:      score,
		FinishedAt: &finishedAt,
		Test:       &models.Test{ID: 7, CourseID: 3},
	}
}

func algebraAchievement() *models.Achievement {
	return &models.Achievement{
		ID:             8,
		CourseID:       3,
		SuccessMessage: "Well done!",
		FailureMessage: "Keep practicing.",
	}
}

func TestAchievementService_Resolve(t *testing.T) {
	t.Run("passing score unlocks the achievement once", func(t *testing.T) {
		repo := NewMockRepository()
		publisher := events.NewMockEventPublisher(testLogger())
		repo.attempt.On("GetByIDWithDetails", mock.Anything, uint(1)).Return(finishedAttempt(6.67), nil)
		repo.course.On("GetByID", mock.Anything, uint(3)).Return(&models.Course{ID: 3, Title: "Algebra"}, nil)
		repo.achievement.On("GetByCourseID", mock.Anything, uint(3)).Return(algebraAchievement(), nil)
		repo.achievement.On("FindOrCreateUnlock", mock.Anything, uint(42), uint(8), mock.Anything).Return(true, nil)

		result, err := NewAchievementService(repo, testLogger(), publisher).Resolve(context.Background(), 1)

		assert.NoError(t, err)
		assert.True(t, result.Passed)
		assert.True(t, result.Unlocked)
		assert.Equal(t, "Well done!", result.Message)
		assert.Equal(t, 6.67, result.Score)

		published := publisher.Published()
		if assert.Len(t, published, 1) {
			assert.Equal(t, events.EventAchievementUnlocked, published[0].Type)
		}
	})

	t.Run("revisiting the result does not publish a second unlock", func(t *testing.T) {
		repo := NewMockRepository()
		publisher := events.NewMockEventPublisher(testLogger())
		repo.attempt.On("GetByIDWithDetails", mock.Anything, uint(1)).Return(finishedAttempt(10), nil)
		repo.course.On("GetByID", mock.Anything, uint(3)).Return(&models.Course{ID: 3, Title: "Algebra"}, nil)
		repo.achievement.On("GetByCourseID", mock.Anything, uint(3)).Return(algebraAchievement(), nil)
		// Unlock row already exists.
		repo.achievement.On("FindOrCreateUnlock", mock.Anything, uint(42), uint(8), mock.Anything).Return(false, nil)

		result, err := NewAchievementService(repo, testLogger(), publisher).Resolve(context.Background(), 1)

		assert.NoError(t, err)
		assert.True(t, result.Unlocked)
		assert.Empty(t, publisher.Published())
	})

	t.Run("failing score keeps the achievement locked", func(t *testing.T) {
		repo := NewMockRepository()
		repo.attempt.On("GetByIDWithDetails", mock.Anything, uint(1)).Return(finishedAttempt(3.33), nil)
		repo.course.On("GetByID", mock.Anything, uint(3)).Return(&models.Course{ID: 3, Title: "Algebra"}, nil)
		repo.achievement.On("GetByCourseID", mock.Anything, uint(3)).Return(algebraAchievement(), nil)

		result, err := NewAchievementService(repo, testLogger(), nil).Resolve(context.Background(), 1)

		assert.NoError(t, err)
		assert.False(t, result.Passed)
		assert.False(t, result.Unlocked)
		assert.Equal(t, "Keep practicing.", result.Message)
		repo.achievement.AssertNotCalled(t, "FindOrCreateUnlock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("threshold score passes", func(t *testing.T) {
		repo := NewMockRepository()
		repo.attempt.On("GetByIDWithDetails", mock.Anything, uint(1)).Return(finishedAttempt(5), nil)
		repo.course.On("GetByID", mock.Anything, uint(3)).Return(&models.Course{ID: 3}, nil)
		repo.achievement.On("GetByCourseID", mock.Anything, uint(3)).Return(algebraAchievement(), nil)
		repo.achievement.On("FindOrCreateUnlock", mock.Anything, uint(42), uint(8), mock.Anything).Return(true, nil)

		result, err := NewAchievementService(repo, testLogger(), nil).Resolve(context.Background(), 1)

		assert.NoError(t, err)
		assert.True(t, result.Passed)
	})

	t.Run("unfinished attempt has no result", func(t *testing.T) {
		repo := NewMockRepository()
		attempt := &models.TestAttempt{ID: 1, TestID: 7, UserID: 42, Test: &models.Test{ID: 7, CourseID: 3}}
		repo.attempt.On("GetByIDWithDetails", mock.Anything, uint(1)).Return(attempt, nil)

		_, err := NewAchievementService(repo, testLogger(), nil).Resolve(context.Background(), 1)

		assert.ErrorIs(t, err, ErrAttemptNotFinished)
	})

	t.Run("unknown attempt", func(t *testing.T) {
		repo := NewMockRepository()
		repo.attempt.On("GetByIDWithDetails", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewAchievementService(repo, testLogger(), nil).Resolve(context.Background(), 9)

		assert.ErrorIs(t, err, ErrAttemptNotFound)
	})

	t.Run("course without an achievement", func(t *testing.T) {
		repo := NewMockRepository()
		repo.attempt.On("GetByIDWithDetails", mock.Anything, uint(1)).Return(finishedAttempt(10), nil)
		repo.course.On("GetByID", mock.Anything, uint(3)).Return(&models.Course{ID: 3}, nil)
		repo.achievement.On("GetByCourseID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewAchievementService(repo, testLogger(), nil).Resolve(context.Background(), 1)

		assert.ErrorIs(t, err, ErrAchievementNotFound)
	})
}
