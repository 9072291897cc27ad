package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aulanet/aulanet/internal/cache"
	"github.com/aulanet/aulanet/internal/models"
	"github.com/aulanet/aulanet/internal/repositories"
)

const (
	courseCacheTTL     = 5 * time.Minute
	courseListCacheKey = "courses:list"
)

type courseService struct {
	repo   repositories.Repository
	logger *slog.Logger
	cache  cache.CacheService
}

// NewCourseService returns the catalog read service. The cache is optional;
// with a nil cache every read goes to the store.
func NewCourseService(repo repositories.Repository, logger *slog.Logger, cacheService cache.CacheService) CourseService {
	return &courseService{
		repo:   repo,
		logger: logger,
		cache:  cacheService,
	}
}

func (s *courseService) List(ctx context.Context) ([]*models.Course, error) {
	if s.cache != nil {
		var cached []*models.Course
		err := s.cache.Get(ctx, courseListCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("course list cache read failed", "error", err)
		}
	}

	courses, err := s.repo.Course().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, courseListCacheKey, courses, courseCacheTTL); err != nil {
			s.logger.Warn("course list cache write failed", "error", err)
		}
	}

	return courses, nil
}

func (s *courseService) Get(ctx context.Context, id uint) (*models.Course, error) {
	key := courseCacheKey(id)
	if s.cache != nil {
		var cached models.Course
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("course cache read failed", "course_id", id, "error", err)
		}
	}

	course, err := s.repo.Course().GetByIDWithTopics(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, course, courseCacheTTL); err != nil {
			s.logger.Warn("course cache write failed", "course_id", id, "error", err)
		}
	}

	return course, nil
}

func courseCacheKey(id uint) string {
	return fmt.Sprintf("courses:%d", id)
}
