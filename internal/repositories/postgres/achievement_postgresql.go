package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/aulanet/aulanet/internal/models"
	"github.com/aulanet/aulanet/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementPostgreSQL struct {
	db *gorm.DB
}

func NewAchievementPostgreSQL(db *gorm.DB) repositories.AchievementRepository {
	return &AchievementPostgreSQL{db: db}
}

func (a *AchievementPostgreSQL) GetByCourseID(ctx context.Context, courseID uint) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := a.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		First(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (a *AchievementPostgreSQL) FindOrCreateUnlock(ctx context.Context, userID, achievementID uint, at time.Time) (bool, error) {
	var existing models.UserAchievement
	err := a.db.WithContext(ctx).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	unlock := models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    at,
	}
	// DoNothing keeps the operation idempotent under concurrent unlocks; the
	// composite primary key is the conflict target.
	res := a.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&unlock)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (a *AchievementPostgreSQL) HasUnlock(ctx context.Context, userID, achievementID uint) (bool, error) {
	var count int64
	if err := a.db.WithContext(ctx).
		Model(&models.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
