package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/aulanet/aulanet/internal/services"
	"github.com/go-co-op/gocron"
)

// Scheduler drives the reminder dispatch loop.
type Scheduler struct {
	scheduler *gocron.Scheduler
	reminders services.ReminderService
	logger    *slog.Logger
	interval  time.Duration
}

func New(reminders services.ReminderService, logger *slog.Logger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		reminders: reminders,
		logger:    logger,
		interval:  interval,
	}
}

// Start registers the dispatch job and runs the scheduler in the background.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).Do(s.dispatchDue)
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.logger.Info("Reminder scheduler started", "interval", s.interval)
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) dispatchDue() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sent, err := s.reminders.Dispatch(ctx, time.Now())
	if err != nil {
		s.logger.Error("Reminder dispatch failed", "error", err)
		return
	}
	if sent > 0 {
		s.logger.Info("Reminders dispatched", "sent", sent)
	}
}
