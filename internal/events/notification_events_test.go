package events

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAttemptFinishedEvent(t *testing.T) {
	data := AttemptFinishedData{
		AttemptID: 1,
		TestID:    7,
		CourseID:  3,
		UserID:    42,
		Score:     6.67,
		Finished:  time.Now(),
	}

	event := NewAttemptFinishedEvent(data)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventAttemptFinished, event.Type)
	assert.Equal(t, "aulanet", event.Source)
	assert.Equal(t, data, event.Data)
}

func TestMockEventPublisher(t *testing.T) {
	publisher := NewMockEventPublisher(slog.New(slog.DiscardHandler))

	err := publisher.PublishNotificationEvent(context.Background(), NewAchievementUnlockedEvent(AchievementUnlockedData{
		UserID:        42,
		AchievementID: 8,
		CourseID:      3,
		UnlockedAt:    time.Now(),
	}))
	assert.NoError(t, err)

	published := publisher.Published()
	if assert.Len(t, published, 1) {
		assert.Equal(t, EventAchievementUnlocked, published[0].Type)
	}

	// Published returns a snapshot, not the live slice.
	published[0].Type = "mutated"
	assert.Equal(t, EventAchievementUnlocked, publisher.Published()[0].Type)
}
