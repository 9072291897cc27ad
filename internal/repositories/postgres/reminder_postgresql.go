package postgres

import (
	"context"
	"time"

	"github.com/aulanet/aulanet/internal/models"
	"github.com/aulanet/aulanet/internal/repositories"
	"gorm.io/gorm"
)

type ReminderPostgreSQL struct {
	db *gorm.DB
}

func NewReminderPostgreSQL(db *gorm.DB) repositories.ReminderRepository {
	return &ReminderPostgreSQL{db: db}
}

func (r *ReminderPostgreSQL) Create(ctx context.Context, reminder *models.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *ReminderPostgreSQL) GetByUser(ctx context.Context, userID uint) ([]*models.Reminder, error) {
	var reminders []*models.Reminder
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_at").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *ReminderPostgreSQL) DueBefore(ctx context.Context, t time.Time) ([]*models.Reminder, error) {
	var reminders []*models.Reminder
	if err := r.db.WithContext(ctx).
		Where("due_at <= ?", t).
		Order("due_at").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *ReminderPostgreSQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Reminder{}, id).Error
}
