package postgres

import (
	"context"

	"github.com/aulanet/aulanet/internal/repositories"
	"gorm.io/gorm"
)

// GormRepository implements repositories.Repository over a *gorm.DB. The same
// type serves both the root connection and a transaction handle, so
// WithTransaction just rebinds the sub-repositories to the tx.
type GormRepository struct {
	db *gorm.DB

	course      repositories.CourseRepository
	test        repositories.TestRepository
	attempt     repositories.AttemptRepository
	user        repositories.UserRepository
	achievement repositories.AchievementRepository
	reminder    repositories.ReminderRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &GormRepository{
		db:          db,
		course:      NewCoursePostgreSQL(db),
		test:        NewTestPostgreSQL(db),
		attempt:     NewAttemptPostgreSQL(db),
		user:        NewUserPostgreSQL(db),
		achievement: NewAchievementPostgreSQL(db),
		reminder:    NewReminderPostgreSQL(db),
	}
}

func (r *GormRepository) Course() repositories.CourseRepository           { return r.course }
func (r *GormRepository) Test() repositories.TestRepository              { return r.test }
func (r *GormRepository) Attempt() repositories.AttemptRepository        { return r.attempt }
func (r *GormRepository) User() repositories.UserRepository              { return r.user }
func (r *GormRepository) Achievement() repositories.AchievementRepository { return r.achievement }
func (r *GormRepository) Reminder() repositories.ReminderRepository      { return r.reminder }

func (r *GormRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

func (r *GormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *GormRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
