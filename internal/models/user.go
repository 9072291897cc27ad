package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`

	Preferences datatypes.JSON `json:"preferences,omitempty"`
	LastLoginAt *time.Time     `json:"last_login_at"`
	CreatedAt   time.Time      `json:"created_at"`

	// Relations
	Attempts     []TestAttempt `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reminders    []Reminder    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Achievements []Achievement `json:"-" gorm:"many2many:user_achievements;"`
}

func (User) TableName() string {
	return "users"
}
