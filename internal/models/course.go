package models

// Course groups the theory topics and the single test a learner works through.
type Course struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Description *string `json:"description" gorm:"type:text" validate:"omitempty,max=1000"`

	// Relations
	Topics      []Topic      `json:"topics,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Test        *Test        `json:"test,omitempty" gorm:"foreignKey:CourseID"`
	Achievement *Achievement `json:"achievement,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

type Topic struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	CourseID uint   `json:"course_id" gorm:"not null;index"`
	Title    string `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Content  string `json:"content" gorm:"type:text" validate:"required"`
}

func (Course) TableName() string {
	return "courses"
}

func (Topic) TableName() string {
	return "topics"
}
