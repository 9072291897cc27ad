package events

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
)

// EventType identifies the notification events the service emits.
type EventType string

const (
	EventAttemptFinished     EventType = "attempt.finished"
	EventAchievementUnlocked EventType = "achievement.unlocked"
)

// NotificationEvent is the envelope published to the notification topic.
type NotificationEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// AttemptFinishedData is emitted when a test attempt reaches its terminal
// state.
type AttemptFinishedData struct {
	AttemptID uint      `json:"attempt_id"`
	TestID    uint      `json:"test_id"`
	CourseID  uint      `json:"course_id"`
	UserID    uint      `json:"user_id"`
	Score     float64   `json:"score"`
	Finished  time.Time `json:"finished_at"`
}

// AchievementUnlockedData is emitted the first time a user unlocks a course
// achievement.
type AchievementUnlockedData struct {
	UserID        uint      `json:"user_id"`
	AchievementID uint      `json:"achievement_id"`
	CourseID      uint      `json:"course_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

func newEvent(eventType EventType, data interface{}) *NotificationEvent {
	return &NotificationEvent{
		ID:        watermill.NewUUID(),
		Type:      eventType,
		Source:    "aulanet",
		Version:   "1.0",
		Timestamp: time.Now(),
		Data:      data,
	}
}

func NewAttemptFinishedEvent(data AttemptFinishedData) *NotificationEvent {
	return newEvent(EventAttemptFinished, data)
}

func NewAchievementUnlockedEvent(data AchievementUnlockedData) *NotificationEvent {
	return newEvent(EventAchievementUnlocked, data)
}
