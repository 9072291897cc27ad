package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aulanet/aulanet/internal/events"
	"github.com/aulanet/aulanet/internal/repositories"
)

// PassingScore is the minimum score (out of 10) that unlocks a course
// achievement.
const PassingScore = 5.0

type achievementService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	publisher events.EventPublisher
}

func NewAchievementService(repo repositories.Repository, logger *slog.Logger, publisher events.EventPublisher) AchievementService {
	return &achievementService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// Resolve inspects a finished attempt against the course's achievement: a
// passing score unlocks the achievement for the user, at most once per
// (user, achievement) pair no matter how often the result page is revisited.
func (s *achievementService) Resolve(ctx context.Context, attemptID uint) (*AttemptResultView, error) {
	attempt, err := s.repo.Attempt().GetByIDWithDetails(ctx, attemptID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	if !attempt.Finished {
		return nil, ErrAttemptNotFinished
	}
	if attempt.Test == nil {
		return nil, ErrTestNotFound
	}

	course, err := s.repo.Course().GetByID(ctx, attempt.Test.CourseID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	achievement, err := s.repo.Achievement().GetByCourseID(ctx, course.ID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}

	passed := attempt.Score >= PassingScore
	unlocked := false
	if passed && attempt.UserID != 0 {
		now := time.Now()
		created, err := s.repo.Achievement().FindOrCreateUnlock(ctx, attempt.UserID, achievement.ID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to record achievement unlock: %w", err)
		}
		unlocked = true

		if created {
			s.logger.Info("Achievement unlocked",
				"user_id", attempt.UserID,
				"achievement_id", achievement.ID,
				"course_id", course.ID)

			if s.publisher != nil {
				event := events.NewAchievementUnlockedEvent(events.AchievementUnlockedData{
					UserID:        attempt.UserID,
					AchievementID: achievement.ID,
					CourseID:      course.ID,
					UnlockedAt:    now,
				})
				if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
					s.logger.Error("Failed to publish achievement unlocked event",
						"achievement_id", achievement.ID, "error", err)
				}
			}
		}
	}

	message := achievement.FailureMessage
	if passed {
		message = achievement.SuccessMessage
	}

	return &AttemptResultView{
		AttemptID:   attempt.ID,
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Score:       attempt.Score,
		FinishedAt:  attempt.FinishedAt,
		Passed:      passed,
		Unlocked:    unlocked,
		Message:     message,
		Achievement: achievement,
	}, nil
}
