package repositories

import (
	"context"
	"time"

	"github.com/aulanet/aulanet/internal/models"
)

type AchievementRepository interface {
	GetByCourseID(ctx context.Context, courseID uint) (*models.Achievement, error)

	// FindOrCreateUnlock records the (user, achievement) unlock if it does not
	// exist yet and reports whether a new row was created.
	FindOrCreateUnlock(ctx context.Context, userID, achievementID uint, at time.Time) (bool, error)
	HasUnlock(ctx context.Context, userID, achievementID uint) (bool, error)
}
