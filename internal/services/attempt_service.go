package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/aulanet/aulanet/internal/events"
	"github.com/aulanet/aulanet/internal/models"
	"github.com/aulanet/aulanet/internal/repositories"
)

type attemptService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	publisher events.EventPublisher
}

func NewAttemptService(repo repositories.Repository, logger *slog.Logger, publisher events.EventPublisher) AttemptService {
	return &attemptService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// ===== CORE ATTEMPT OPERATIONS =====

// Start creates an attempt for (testID, userID) with one unanswered question
// attempt per question of the test, as a single transactional unit.
func (s *attemptService) Start(ctx context.Context, testID, userID uint) (uint, error) {
	s.logger.Info("Starting test attempt",
		"test_id", testID,
		"user_id", userID)

	test, err := s.repo.Test().GetByIDWithQuestions(ctx, testID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return 0, ErrTestNotFound
		}
		return 0, fmt.Errorf("failed to get test: %w", err)
	}

	attempt := &models.TestAttempt{
		TestID: testID,
		UserID: userID,
	}
	for _, question := range test.Questions {
		attempt.QuestionAttempts = append(attempt.QuestionAttempts, models.QuestionAttempt{
			QuestionID: question.ID,
		})
	}

	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		return txRepo.Attempt().Create(ctx, attempt)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create attempt: %w", err)
	}

	s.logger.Info("Test attempt started",
		"attempt_id", attempt.ID,
		"test_id", testID,
		"user_id", userID,
		"questions", len(attempt.QuestionAttempts))

	return attempt.ID, nil
}

// AnswerQuestion records the answer for one question of an attempt. Each
// question attempt is write-once: a second answer for the same question fails
// with ErrQuestionAlreadyAnswered and leaves the first answer in place.
func (s *attemptService) AnswerQuestion(ctx context.Context, attemptID uint, questionNumber int, answerID, userID uint) error {
	s.logger.Info("Answering question",
		"attempt_id", attemptID,
		"question_number", questionNumber,
		"answer_id", answerID,
		"user_id", userID)

	qa, err := s.repo.Attempt().FindQuestionAttempt(ctx, attemptID, questionNumber, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrAnswerNotFound
		}
		return fmt.Errorf("failed to resolve question attempt: %w", err)
	}

	answer, err := s.repo.Test().GetAnswer(ctx, answerID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrAnswerNotFound
		}
		return fmt.Errorf("failed to get answer: %w", err)
	}
	// The answer must belong to the question holding this ordinal.
	if answer.QuestionID != qa.QuestionID {
		return ErrAnswerNotFound
	}

	attempt := qa.Attempt
	if attempt.Finished {
		return ErrAttemptAlreadyFinished
	}
	if qa.Answered() {
		return ErrQuestionAlreadyAnswered
	}

	attempt.QuestionsAnswered++
	if answer.Correct() {
		attempt.CorrectAnswers++
	}
	qa.AnswerID = &answerID
	qa.AnsweredAt = time.Now()

	// Both row updates commit or roll back together.
	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.Attempt().Update(ctx, attempt); err != nil {
			return err
		}
		return txRepo.Attempt().UpdateQuestionAttempt(ctx, qa)
	})
	if err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}

	s.logger.Info("Question answered",
		"attempt_id", attemptID,
		"question_number", questionNumber,
		"correct", answer.Correct(),
		"answered", attempt.QuestionsAnswered)

	return nil
}

// Finish moves the attempt to its terminal state: every question must be
// answered, the score is fixed to round((correct/total)*10, 2) and the finish
// timestamp is set. Returns the id of the course owning the attempt's test.
func (s *attemptService) Finish(ctx context.Context, attemptID, userID uint) (uint, error) {
	s.logger.Info("Finishing test attempt",
		"attempt_id", attemptID,
		"user_id", userID)

	attempt, err := s.repo.Attempt().GetByIDForUser(ctx, attemptID, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return 0, ErrAttemptNotFound
		}
		return 0, fmt.Errorf("failed to get attempt: %w", err)
	}

	if attempt.Finished {
		return 0, ErrAttemptAlreadyFinished
	}

	totalQuestions := len(attempt.QuestionAttempts)
	if attempt.QuestionsAnswered < totalQuestions {
		return 0, ErrUnansweredQuestions
	}

	attempt.Score = roundScore(attempt.CorrectAnswers, totalQuestions)
	attempt.Finished = true
	now := time.Now()
	attempt.FinishedAt = &now

	if err := s.repo.Attempt().Update(ctx, attempt); err != nil {
		return 0, fmt.Errorf("failed to save finished attempt: %w", err)
	}

	var courseID uint
	if attempt.Test != nil {
		courseID = attempt.Test.CourseID
	}

	s.logger.Info("Test attempt finished",
		"attempt_id", attemptID,
		"score", attempt.Score,
		"course_id", courseID)

	if s.publisher != nil {
		event := events.NewAttemptFinishedEvent(events.AttemptFinishedData{
			AttemptID: attempt.ID,
			TestID:    attempt.TestID,
			CourseID:  courseID,
			UserID:    attempt.UserID,
			Score:     attempt.Score,
			Finished:  now,
		})
		if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
			s.logger.Error("Failed to publish attempt finished event",
				"attempt_id", attempt.ID, "error", err)
		}
	}

	return courseID, nil
}

// GetQuestionAttempt returns the attempt focused on one question. Before the
// question is answered the feedback and correctness flags are withheld; once
// answered the full review view is returned.
func (s *attemptService) GetQuestionAttempt(ctx context.Context, attemptID uint, questionNumber int, userID uint) (*QuestionAttemptView, error) {
	qa, err := s.repo.Attempt().FindQuestionAttempt(ctx, attemptID, questionNumber, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionAttemptNotFound
		}
		return nil, fmt.Errorf("failed to resolve question attempt: %w", err)
	}

	attempt := qa.Attempt
	totalQuestions, err := s.repo.Test().CountQuestions(ctx, attempt.TestID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	var question *models.Question
	if qa.Answered() {
		question, err = s.repo.Test().GetQuestionForReview(ctx, attempt.TestID, questionNumber)
	} else {
		question, err = s.repo.Test().GetQuestionForTaking(ctx, attempt.TestID, questionNumber)
	}
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionAttemptNotFound
		}
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	question.SelectedAnswerID = qa.AnswerID

	return &QuestionAttemptView{
		Attempt:          attempt,
		Question:         question,
		TotalQuestions:   int(totalQuestions),
		SelectedAnswerID: qa.AnswerID,
	}, nil
}

// ListAttempts reclaims the user's abandoned attempts, then returns the course
// with the user's attempts at its test.
func (s *attemptService) ListAttempts(ctx context.Context, courseID, userID uint) (*CourseAttemptsView, error) {
	if err := s.repo.Attempt().DeleteUnfinishedByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clean up unfinished attempts: %w", err)
	}

	course, err := s.repo.Course().GetByIDWithTest(ctx, courseID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course.Test == nil {
		return nil, ErrTestNotFound
	}

	attempts, err := s.repo.Attempt().GetByTestAndUser(ctx, course.Test.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	return &CourseAttemptsView{
		Course:   course,
		Attempts: attempts,
	}, nil
}

// roundScore maps (correct, total) onto the 0-10 scale with two-decimal
// precision.
func roundScore(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*10*100) / 100
}
