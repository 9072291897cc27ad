package repositories

import (
	"context"
	"time"

	"github.com/aulanet/aulanet/internal/models"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	GetByUser(ctx context.Context, userID uint) ([]*models.Reminder, error)
	DueBefore(ctx context.Context, t time.Time) ([]*models.Reminder, error)
	Delete(ctx context.Context, id uint) error
}
