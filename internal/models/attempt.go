package models

import (
	"time"
)

// TestAttempt is one user's run through a test. It starts unfinished with every
// question attempt unanswered and becomes terminal once Finished is set.
type TestAttempt struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	TestID uint `json:"test_id" gorm:"not null;index"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	QuestionsAnswered int        `json:"questions_answered" gorm:"not null;default:0"`
	CorrectAnswers    int        `json:"correct_answers" gorm:"not null;default:0"`
	Finished          bool       `json:"finished" gorm:"not null;default:false;index"`
	Score             float64    `json:"score" gorm:"type:numeric(4,2);default:0"`
	FinishedAt        *time.Time `json:"finished_at"`

	// Relations
	Test             *Test             `json:"test,omitempty" gorm:"foreignKey:TestID"`
	QuestionAttempts []QuestionAttempt `json:"question_attempts,omitempty" gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
}

// QuestionAttempt records one question's answer (or lack thereof) inside an
// attempt. AnswerID is write-once: nil until the question is answered, then
// never overwritten.
type QuestionAttempt struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	AttemptID  uint      `json:"attempt_id" gorm:"not null;index"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	AnswerID   *uint     `json:"answer_id"`
	AnsweredAt time.Time `json:"answered_at"`

	// Relations
	Attempt  *TestAttempt `json:"-" gorm:"foreignKey:AttemptID"`
	Question *Question    `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer   *Answer      `json:"answer,omitempty" gorm:"foreignKey:AnswerID"`
}

func (TestAttempt) TableName() string {
	return "test_attempts"
}

func (QuestionAttempt) TableName() string {
	return "question_attempts"
}

// Answered reports whether the write-once answer guard has tripped.
func (qa *QuestionAttempt) Answered() bool {
	return qa.AnswerID != nil
}
