package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aulanet/aulanet/internal/mailer"
	"github.com/aulanet/aulanet/internal/models"
	"github.com/aulanet/aulanet/internal/repositories"
	"github.com/aulanet/aulanet/internal/utils"
)

type reminderService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *utils.Validator
	mailer    mailer.Mailer
}

func NewReminderService(repo repositories.Repository, logger *slog.Logger, validator *utils.Validator, m mailer.Mailer) ReminderService {
	return &reminderService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		mailer:    m,
	}
}

func (s *reminderService) Create(ctx context.Context, req *CreateReminderRequest, userID uint) (*models.Reminder, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	reminder := &models.Reminder{
		UserID:  userID,
		DueAt:   req.DueAt,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := s.repo.Reminder().Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	s.logger.Info("Reminder scheduled",
		"reminder_id", reminder.ID,
		"user_id", userID,
		"due_at", reminder.DueAt)

	return reminder, nil
}

func (s *reminderService) ListByUser(ctx context.Context, userID uint) ([]*models.Reminder, error) {
	reminders, err := s.repo.Reminder().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

// Dispatch sends every reminder due at or before now. A reminder row is only
// deleted after its mail went out, so a failed send is retried on the next
// tick.
func (s *reminderService) Dispatch(ctx context.Context, now time.Time) (int, error) {
	due, err := s.repo.Reminder().DueBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to load due reminders: %w", err)
	}

	sent := 0
	for _, reminder := range due {
		if err := s.mailer.Send(reminder.Email, reminder.Subject, reminder.Body); err != nil {
			s.logger.Error("Failed to send reminder",
				"reminder_id", reminder.ID, "error", err)
			continue
		}
		if err := s.repo.Reminder().Delete(ctx, reminder.ID); err != nil {
			s.logger.Error("Failed to delete sent reminder",
				"reminder_id", reminder.ID, "error", err)
			continue
		}
		sent++
	}

	if len(due) > 0 {
		s.logger.Info("Reminder dispatch pass finished",
			"due", len(due), "sent", sent)
	}
	return sent, nil
}
