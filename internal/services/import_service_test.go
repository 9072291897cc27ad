package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/aulanet/aulanet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func buildWorkbook(t *testing.T, rows [][]string) io.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		for j, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+j, i+1)
			assert.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}
	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

var workbookHeader = []string{"statement", "feedback", "option_a", "option_b", "option_c", "option_d", "correct_answer"}

func TestImportService_ImportTest(t *testing.T) {
	t.Run("builds the test from the workbook rows", func(t *testing.T) {
		repo := NewMockRepository()
		repo.course.On("GetByIDWithTest", mock.Anything, uint(3)).Return(&models.Course{ID: 3}, nil)
		repo.test.On("CreateWithQuestions", mock.Anything, mock.MatchedBy(func(test *models.Test) bool {
			if test.CourseID != 3 || len(test.Questions) != 2 {
				return false
			}
			q1, q2 := test.Questions[0], test.Questions[1]
			if q1.Number != 1 || q2.Number != 2 {
				return false
			}
			// Exactly one correct answer per question.
			for _, q := range test.Questions {
				correct := 0
				for _, a := range q.Answers {
					if a.Correct() {
						correct++
					}
				}
				if correct != 1 {
					return false
				}
			}
			return q1.Answers[1].Correct() && q2.Answers[0].Correct()
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Test).ID = 7
		}).Return(nil)

		workbook := buildWorkbook(t, [][]string{
			workbookHeader,
			{"2+2?", "Basic addition", "3", "4", "5", "", "B"},
			{"Capital of France?", "", "Paris", "Rome", "", "", "A"},
		})

		result, err := NewImportService(repo, testLogger(), nil).ImportTest(context.Background(), 3, workbook)

		assert.NoError(t, err)
		assert.Equal(t, uint(7), result.TestID)
		assert.Equal(t, 2, result.QuestionCount)
		assert.Equal(t, 5, result.AnswerCount)
		assert.Empty(t, result.Warnings)
	})

	t.Run("skips blank rows with a warning", func(t *testing.T) {
		repo := NewMockRepository()
		repo.course.On("GetByIDWithTest", mock.Anything, uint(3)).Return(&models.Course{ID: 3}, nil)
		repo.test.On("CreateWithQuestions", mock.Anything, mock.Anything).Return(nil)

		workbook := buildWorkbook(t, [][]string{
			workbookHeader,
			{"", "", "", "", "", "", ""},
			{"2+2?", "", "3", "4", "", "", "B"},
		})

		result, err := NewImportService(repo, testLogger(), nil).ImportTest(context.Background(), 3, workbook)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.QuestionCount)
		assert.Len(t, result.Warnings, 1)
	})

	t.Run("rejects a row naming an absent option as correct", func(t *testing.T) {
		repo := NewMockRepository()
		repo.course.On("GetByIDWithTest", mock.Anything, uint(3)).Return(&models.Course{ID: 3}, nil)

		workbook := buildWorkbook(t, [][]string{
			workbookHeader,
			{"2+2?", "", "3", "4", "", "", "D"},
		})

		_, err := NewImportService(repo, testLogger(), nil).ImportTest(context.Background(), 3, workbook)

		assert.ErrorIs(t, err, ErrValidationFailed)
		repo.test.AssertNotCalled(t, "CreateWithQuestions", mock.Anything, mock.Anything)
	})

	t.Run("rejects a row with no correct answer marked", func(t *testing.T) {
		repo := NewMockRepository()
		repo.course.On("GetByIDWithTest", mock.Anything, uint(3)).Return(&models.Course{ID: 3}, nil)

		workbook := buildWorkbook(t, [][]string{
			workbookHeader,
			{"2+2?", "", "3", "4", "", "", ""},
		})

		_, err := NewImportService(repo, testLogger(), nil).ImportTest(context.Background(), 3, workbook)

		assert.ErrorIs(t, err, ErrValidationFailed)
		repo.test.AssertNotCalled(t, "CreateWithQuestions", mock.Anything, mock.Anything)
	})

	t.Run("rejects a row with fewer than two options", func(t *testing.T) {
		repo := NewMockRepository()
		repo.course.On("GetByIDWithTest", mock.Anything, uint(3)).Return(&models.Course{ID: 3}, nil)

		workbook := buildWorkbook(t, [][]string{
			workbookHeader,
			{"2+2?", "", "4", "", "", "", "A"},
		})

		_, err := NewImportService(repo, testLogger(), nil).ImportTest(context.Background(), 3, workbook)

		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("course already has a test", func(t *testing.T) {
		repo := NewMockRepository()
		course := &models.Course{ID: 3, Test: &models.Test{ID: 7, CourseID: 3}}
		repo.course.On("GetByIDWithTest", mock.Anything, uint(3)).Return(course, nil)

		_, err := NewImportService(repo, testLogger(), nil).ImportTest(context.Background(), 3, buildWorkbook(t, [][]string{workbookHeader}))

		assert.ErrorIs(t, err, ErrTestExists)
	})

	t.Run("unknown course", func(t *testing.T) {
		repo := NewMockRepository()
		repo.course.On("GetByIDWithTest", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewImportService(repo, testLogger(), nil).ImportTest(context.Background(), 9, buildWorkbook(t, [][]string{workbookHeader}))

		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("import invalidates the course cache", func(t *testing.T) {
		repo := NewMockRepository()
		repo.course.On("GetByIDWithTest", mock.Anything, uint(3)).Return(&models.Course{ID: 3}, nil)
		repo.test.On("CreateWithQuestions", mock.Anything, mock.Anything).Return(nil)
		cacheService := newMemoryCache()
		assert.NoError(t, cacheService.Set(context.Background(), "courses:list", []string{"stale"}, 0))

		workbook := buildWorkbook(t, [][]string{
			workbookHeader,
			{"2+2?", "", "3", "4", "", "", "B"},
		})

		_, err := NewImportService(repo, testLogger(), cacheService).ImportTest(context.Background(), 3, workbook)

		assert.NoError(t, err)
		assert.Empty(t, cacheService.entries)
	})
}
