package models

import "time"

// Reminder is a scheduled study-reminder mail. Rows are deleted as soon as the
// mail is sent.
type Reminder struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	UserID  uint      `json:"user_id" gorm:"not null;index"`
	DueAt   time.Time `json:"due_at" gorm:"not null;index" validate:"required"`
	Email   string    `json:"email" gorm:"not null;size:255" validate:"required,email"`
	Subject string    `json:"subject" gorm:"not null;size:100" validate:"required,max=100"`
	Body    string    `json:"body" gorm:"not null;size:200" validate:"required,max=200"`
}

func (Reminder) TableName() string {
	return "reminders"
}
