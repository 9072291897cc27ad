package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/aulanet/aulanet/internal/models"
	"github.com/aulanet/aulanet/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// testLogger discards everything; tests assert on behavior, not log output.
func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ===== MOCK REPOSITORIES =====

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	args := m.Called(ctx, id)
	if course := args.Get(0); course != nil {
		return course.(*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) GetByIDWithTopics(ctx context.Context, id uint) (*models.Course, error) {
	args := m.Called(ctx, id)
	if course := args.Get(0); course != nil {
		return course.(*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) GetByIDWithTest(ctx context.Context, id uint) (*models.Course, error) {
	args := m.Called(ctx, id)
	if course := args.Get(0); course != nil {
		return course.(*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	args := m.Called(ctx)
	if courses := args.Get(0); courses != nil {
		return courses.([]*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTestRepository struct {
	mock.Mock
}

func (m *MockTestRepository) CreateWithQuestions(ctx context.Context, test *models.Test) error {
	args := m.Called(ctx, test)
	return args.Error(0)
}

func (m *MockTestRepository) GetByID(ctx context.Context, id uint) (*models.Test, error) {
	args := m.Called(ctx, id)
	if test := args.Get(0); test != nil {
		return test.(*models.Test), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTestRepository) GetByIDWithQuestions(ctx context.Context, id uint) (*models.Test, error) {
	args := m.Called(ctx, id)
	if test := args.Get(0); test != nil {
		return test.(*models.Test), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTestRepository) GetByCourseID(ctx context.Context, courseID uint) (*models.Test, error) {
	args := m.Called(ctx, courseID)
	if test := args.Get(0); test != nil {
		return test.(*models.Test), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTestRepository) GetQuestionForReview(ctx context.Context, testID uint, number int) (*models.Question, error) {
	args := m.Called(ctx, testID, number)
	if question := args.Get(0); question != nil {
		return question.(*models.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTestRepository) GetQuestionForTaking(ctx context.Context, testID uint, number int) (*models.Question, error) {
	args := m.Called(ctx, testID, number)
	if question := args.Get(0); question != nil {
		return question.(*models.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTestRepository) GetAnswer(ctx context.Context, id uint) (*models.Answer, error) {
	args := m.Called(ctx, id)
	if answer := args.Get(0); answer != nil {
		return answer.(*models.Answer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTestRepository) CountQuestions(ctx context.Context, testID uint) (int64, error) {
	args := m.Called(ctx, testID)
	return args.Get(0).(int64), args.Error(1)
}

type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Create(ctx context.Context, attempt *models.TestAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetByIDForUser(ctx context.Context, id, userID uint) (*models.TestAttempt, error) {
	args := m.Called(ctx, id, userID)
	if attempt := args.Get(0); attempt != nil {
		return attempt.(*models.TestAttempt), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAttemptRepository) GetByIDWithDetails(ctx context.Context, id uint) (*models.TestAttempt, error) {
	args := m.Called(ctx, id)
	if attempt := args.Get(0); attempt != nil {
		return attempt.(*models.TestAttempt), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAttemptRepository) GetByTestAndUser(ctx context.Context, testID, userID uint) ([]*models.TestAttempt, error) {
	args := m.Called(ctx, testID, userID)
	if attempts := args.Get(0); attempts != nil {
		return attempts.([]*models.TestAttempt), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAttemptRepository) Update(ctx context.Context, attempt *models.TestAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) FindQuestionAttempt(ctx context.Context, attemptID uint, questionNumber int, userID uint) (*models.QuestionAttempt, error) {
	args := m.Called(ctx, attemptID, questionNumber, userID)
	if qa := args.Get(0); qa != nil {
		return qa.(*models.QuestionAttempt), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAttemptRepository) UpdateQuestionAttempt(ctx context.Context, qa *models.QuestionAttempt) error {
	args := m.Called(ctx, qa)
	return args.Error(0)
}

func (m *MockAttemptRepository) CountQuestionAttempts(ctx context.Context, attemptID uint) (int64, error) {
	args := m.Called(ctx, attemptID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttemptRepository) DeleteUnfinishedByUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) GetByCourseID(ctx context.Context, courseID uint) (*models.Achievement, error) {
	args := m.Called(ctx, courseID)
	if achievement := args.Get(0); achievement != nil {
		return achievement.(*models.Achievement), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAchievementRepository) FindOrCreateUnlock(ctx context.Context, userID, achievementID uint, at time.Time) (bool, error) {
	args := m.Called(ctx, userID, achievementID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockAchievementRepository) HasUnlock(ctx context.Context, userID, achievementID uint) (bool, error) {
	args := m.Called(ctx, userID, achievementID)
	return args.Bool(0), args.Error(1)
}

type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) GetByUser(ctx context.Context, userID uint) ([]*models.Reminder, error) {
	args := m.Called(ctx, userID)
	if reminders := args.Get(0); reminders != nil {
		return reminders.([]*models.Reminder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReminderRepository) DueBefore(ctx context.Context, t time.Time) ([]*models.Reminder, error) {
	args := m.Called(ctx, t)
	if reminders := args.Get(0); reminders != nil {
		return reminders.([]*models.Reminder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReminderRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ===== AGGREGATE MOCK =====

// MockRepository satisfies repositories.Repository. WithTransaction runs the
// function against the same mock, so expectations set on the sub-mocks cover
// transactional calls too.
type MockRepository struct {
	course      *MockCourseRepository
	test        *MockTestRepository
	attempt     *MockAttemptRepository
	user        *MockUserRepository
	achievement *MockAchievementRepository
	reminder    *MockReminderRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		course:      &MockCourseRepository{},
		test:        &MockTestRepository{},
		attempt:     &MockAttemptRepository{},
		user:        &MockUserRepository{},
		achievement: &MockAchievementRepository{},
		reminder:    &MockReminderRepository{},
	}
}

func (m *MockRepository) Course() repositories.CourseRepository           { return m.course }
func (m *MockRepository) Test() repositories.TestRepository              { return m.test }
func (m *MockRepository) Attempt() repositories.AttemptRepository        { return m.attempt }
func (m *MockRepository) User() repositories.UserRepository              { return m.user }
func (m *MockRepository) Achievement() repositories.AchievementRepository { return m.achievement }
func (m *MockRepository) Reminder() repositories.ReminderRepository      { return m.reminder }

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *MockRepository) Ping(ctx context.Context) error { return nil }
func (m *MockRepository) Close() error                   { return nil }
