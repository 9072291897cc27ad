package services

import (
	"context"
	"io"
	"time"

	"github.com/aulanet/aulanet/internal/models"
)

// ===== SERVICE INTERFACES =====

// AttemptService governs the test-attempt state machine: an attempt is created
// unfinished with one unanswered question attempt per question, each question
// is answered exactly once, and the attempt becomes terminal on Finish.
type AttemptService interface {
	Start(ctx context.Context, testID, userID uint) (uint, error)
	AnswerQuestion(ctx context.Context, attemptID uint, questionNumber int, answerID, userID uint) error
	Finish(ctx context.Context, attemptID, userID uint) (uint, error)
	GetQuestionAttempt(ctx context.Context, attemptID uint, questionNumber int, userID uint) (*QuestionAttemptView, error)
	ListAttempts(ctx context.Context, courseID, userID uint) (*CourseAttemptsView, error)
}

type AchievementService interface {
	Resolve(ctx context.Context, attemptID uint) (*AttemptResultView, error)
}

type CourseService interface {
	List(ctx context.Context) ([]*models.Course, error)
	Get(ctx context.Context, id uint) (*models.Course, error)
}

type UserService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *LoginRequest) (string, error)
}

type ReminderService interface {
	Create(ctx context.Context, req *CreateReminderRequest, userID uint) (*models.Reminder, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Reminder, error)
	// Dispatch sends every reminder due at or before now and deletes each one
	// after a successful send.
	Dispatch(ctx context.Context, now time.Time) (int, error)
}

type ImportService interface {
	ImportTest(ctx context.Context, courseID uint, r io.Reader) (*ImportResult, error)
}

// ===== REQUEST STRUCTURES =====

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type StartAttemptRequest struct {
	TestID uint `json:"test_id" validate:"required"`
}

type AnswerQuestionRequest struct {
	AnswerID uint `json:"answer_id" validate:"required"`
}

type CreateReminderRequest struct {
	DueAt   time.Time `json:"due_at" validate:"required"`
	Email   string    `json:"email" validate:"required,email"`
	Subject string    `json:"subject" validate:"required,max=100"`
	Body    string    `json:"body" validate:"required,max=200"`
}

// ===== RESPONSE STRUCTURES =====

// QuestionAttemptView is an attempt focused on a single question: the question
// as it may be shown right now (redacted before answering, full after), the
// total question count and the previously selected answer, if any.
type QuestionAttemptView struct {
	Attempt          *models.TestAttempt `json:"attempt"`
	Question         *models.Question    `json:"question"`
	TotalQuestions   int                 `json:"total_questions"`
	SelectedAnswerID *uint               `json:"selected_answer_id"`
}

// CourseAttemptsView is a course annotated with the requesting user's past
// attempts at its test.
type CourseAttemptsView struct {
	Course   *models.Course        `json:"course"`
	Attempts []*models.TestAttempt `json:"attempts"`
}

// AttemptResultView is the finished-attempt summary shown on the results page.
type AttemptResultView struct {
	AttemptID   uint                `json:"attempt_id"`
	CourseID    uint                `json:"course_id"`
	CourseTitle string              `json:"course_title"`
	Score       float64             `json:"score"`
	FinishedAt  *time.Time          `json:"finished_at"`
	Passed      bool                `json:"passed"`
	Unlocked    bool                `json:"unlocked"`
	Message     string              `json:"message"`
	Achievement *models.Achievement `json:"achievement"`
}

type ImportResult struct {
	TestID        uint     `json:"test_id"`
	QuestionCount int      `json:"question_count"`
	AnswerCount   int      `json:"answer_count"`
	Warnings      []string `json:"warnings,omitempty"`
}
