package repositories

import (
	"context"

	"github.com/aulanet/aulanet/internal/models"
)

// CourseRepository covers the course/topic catalog reads and the write path
// used by the xlsx importer.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	GetByIDWithTopics(ctx context.Context, id uint) (*models.Course, error)
	GetByIDWithTest(ctx context.Context, id uint) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
}
