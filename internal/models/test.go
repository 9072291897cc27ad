package models

type Test struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	CourseID uint   `json:"course_id" gorm:"not null;uniqueIndex"`
	Title    string `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`

	// Relations
	Questions []Question    `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	Attempts  []TestAttempt `json:"attempts,omitempty" gorm:"foreignKey:TestID"`

	// Computed fields (not stored)
	QuestionCount int `json:"question_count,omitempty" gorm:"-"`
}

type Question struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	TestID    uint   `json:"test_id" gorm:"not null;index;uniqueIndex:idx_test_question_number,priority:1"`
	Number    int    `json:"number" gorm:"not null;uniqueIndex:idx_test_question_number,priority:2" validate:"required,min=1"`
	Statement string `json:"statement" gorm:"type:text;not null" validate:"required"`
	// Feedback is only exposed once the question has been answered.
	Feedback *string `json:"feedback,omitempty" gorm:"type:text"`

	// Relations
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`

	// Set when a question is rendered inside an attempt view.
	SelectedAnswerID *uint `json:"selected_answer_id,omitempty" gorm:"-"`
}

type Answer struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	Text       string `json:"text" gorm:"type:text;not null" validate:"required"`
	// Omitted from pre-answer views so the correct option never leaks.
	IsCorrect *bool `json:"is_correct,omitempty" gorm:"not null"`
}

func (Test) TableName() string {
	return "tests"
}

func (Question) TableName() string {
	return "questions"
}

func (Answer) TableName() string {
	return "answers"
}

// Correct reports the stored flag, treating an elided flag as incorrect.
func (a *Answer) Correct() bool {
	return a.IsCorrect != nil && *a.IsCorrect
}
