package models

import "time"

// Achievement is the per-course badge unlocked the first time a user finishes
// the course's test with a passing score.
type Achievement struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	CourseID       uint   `json:"course_id" gorm:"not null;uniqueIndex"`
	SuccessMessage string `json:"success_message" gorm:"not null;size:200" validate:"required,max=200"`
	FailureMessage string `json:"failure_message" gorm:"not null;size:200" validate:"required,max=200"`
	Image          string `json:"image" gorm:"not null;size:255" validate:"required,max=255"`
}

// UserAchievement is the unlock record, created at most once per (user,
// achievement) pair.
type UserAchievement struct {
	UserID        uint      `json:"user_id" gorm:"primaryKey"`
	AchievementID uint      `json:"achievement_id" gorm:"primaryKey"`
	UnlockedAt    time.Time `json:"unlocked_at" gorm:"not null"`
}

func (Achievement) TableName() string {
	return "achievements"
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
