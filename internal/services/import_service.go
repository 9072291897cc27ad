package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aulanet/aulanet/internal/cache"
	"github.com/aulanet/aulanet/internal/models"
	"github.com/aulanet/aulanet/internal/repositories"
	"github.com/xuri/excelize/v2"
)

type importService struct {
	repo   repositories.Repository
	logger *slog.Logger
	cache  cache.CacheService
}

func NewImportService(repo repositories.Repository, logger *slog.Logger, cacheService cache.CacheService) ImportService {
	return &importService{
		repo:   repo,
		logger: logger,
		cache:  cacheService,
	}
}

// optionColumns caps a question at four answers, A through D.
var optionColumns = []string{"option_a", "option_b", "option_c", "option_d"}

// ImportTest builds a course's test from an Excel workbook. One data row is one
// question; a row must mark exactly one of its options correct. The test and
// all its questions and answers are written in a single transaction.
func (s *importService) ImportTest(ctx context.Context, courseID uint, r io.Reader) (*ImportResult, error) {
	s.logger.Info("Importing test", "course_id", courseID)

	course, err := s.repo.Course().GetByIDWithTest(ctx, courseID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course.Test != nil {
		return nil, ErrTestExists
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %v", ErrValidationFailed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrValidationFailed)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: workbook needs a header row and at least one question row", ErrValidationFailed)
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, col := range []string{"statement", "correct_answer", "option_a", "option_b"} {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrValidationFailed, col)
		}
	}

	test := &models.Test{CourseID: courseID, Title: course.Title}
	var warnings []string
	answerCount := 0

	for rowIndex, row := range rows[1:] {
		question, warn, err := parseQuestionRow(row, headerMap, rowIndex+2)
		if err != nil {
			return nil, err
		}
		if warn != "" {
			warnings = append(warnings, warn)
			continue
		}
		question.Number = len(test.Questions) + 1
		answerCount += len(question.Answers)
		test.Questions = append(test.Questions, *question)
	}

	if len(test.Questions) == 0 {
		return nil, fmt.Errorf("%w: workbook has no usable question rows", ErrValidationFailed)
	}

	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		return txRepo.Test().CreateWithQuestions(ctx, test)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save imported test: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.DeletePattern(ctx, "courses:*"); err != nil {
			s.logger.Warn("failed to invalidate course cache", "error", err)
		}
	}

	s.logger.Info("Test imported",
		"course_id", courseID,
		"test_id", test.ID,
		"questions", len(test.Questions),
		"answers", answerCount,
		"skipped_rows", len(warnings))

	return &ImportResult{
		TestID:        test.ID,
		QuestionCount: len(test.Questions),
		AnswerCount:   answerCount,
		Warnings:      warnings,
	}, nil
}

// parseQuestionRow turns one data row into a question. Blank rows come back as
// a warning rather than an error; structural problems (fewer than two options,
// not exactly one correct answer) abort the whole import.
func parseQuestionRow(row []string, headerMap map[string]int, rowNum int) (*models.Question, string, error) {
	getColumn := func(name string) string {
		if index, ok := headerMap[name]; ok && index < len(row) {
			return strings.TrimSpace(row[index])
		}
		return ""
	}

	statement := getColumn("statement")
	if statement == "" {
		return nil, fmt.Sprintf("row %d: empty statement, row skipped", rowNum), nil
	}

	question := &models.Question{Statement: statement}
	if feedback := getColumn("feedback"); feedback != "" {
		question.Feedback = &feedback
	}

	for _, col := range optionColumns {
		text := getColumn(col)
		if text == "" {
			continue
		}
		incorrect := false
		question.Answers = append(question.Answers, models.Answer{Text: text, IsCorrect: &incorrect})
	}
	if len(question.Answers) < 2 {
		return nil, "", fmt.Errorf("%w: row %d needs at least two options", ErrValidationFailed, rowNum)
	}

	correct := strings.ToUpper(getColumn("correct_answer"))
	if len(correct) != 1 || correct[0] < 'A' || int(correct[0]-'A') >= len(question.Answers) {
		return nil, "", fmt.Errorf("%w: row %d correct_answer must name one present option (A-%c)", ErrValidationFailed, rowNum, 'A'+len(question.Answers)-1)
	}

	isCorrect := true
	question.Answers[correct[0]-'A'].IsCorrect = &isCorrect
	return question, "", nil
}
