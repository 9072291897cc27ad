package handlers

import (
	"net/http"
	"strconv"

	"github.com/aulanet/aulanet/internal/services"
	"github.com/aulanet/aulanet/internal/utils"
	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	BaseHandler
	attemptService services.AttemptService
	validator      *utils.Validator
}

func NewAttemptHandler(
	attemptService services.AttemptService,
	validator *utils.Validator,
	logger utils.Logger,
) *AttemptHandler {
	return &AttemptHandler{
		BaseHandler:    NewBaseHandler(logger),
		attemptService: attemptService,
		validator:      validator,
	}
}

// StartAttempt opens a new attempt at a test
// @Summary Start attempt
// @Tags attempts
// @Accept json
// @Produce json
// @Param attempt body services.StartAttemptRequest true "Attempt data"
// @Success 201 {object} map[string]uint
// @Failure 404 {object} ErrorResponse
// @Router /attempts [post]
func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	var req services.StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
		return
	}

	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	attemptID, err := h.attemptService.Start(c.Request.Context(), req.TestID, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attempt_id": attemptID})
}

// GetQuestionAttempt returns one question of an attempt
// @Summary Get question attempt
// @Tags attempts
// @Produce json
// @Param id path uint true "Attempt ID"
// @Param number path int true "Question number"
// @Success 200 {object} services.QuestionAttemptView
// @Failure 404 {object} ErrorResponse
// @Router /attempts/{id}/questions/{number} [get]
func (h *AttemptHandler) GetQuestionAttempt(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}
	number := h.parseQuestionNumber(c)
	if number == 0 {
		return
	}

	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	view, err := h.attemptService.GetQuestionAttempt(c.Request.Context(), id, number, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// AnswerQuestion records the answer for one question of an attempt
// @Summary Answer question
// @Tags attempts
// @Accept json
// @Produce json
// @Param id path uint true "Attempt ID"
// @Param number path int true "Question number"
// @Param answer body services.AnswerQuestionRequest true "Selected answer"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /attempts/{id}/questions/{number} [put]
func (h *AttemptHandler) AnswerQuestion(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}
	number := h.parseQuestionNumber(c)
	if number == 0 {
		return
	}

	var req services.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
		return
	}

	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	if err := h.attemptService.AnswerQuestion(c.Request.Context(), id, number, req.AnswerID, userID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Answer recorded"})
}

// FinishAttempt closes an attempt and fixes its score
// @Summary Finish attempt
// @Tags attempts
// @Produce json
// @Param id path uint true "Attempt ID"
// @Success 200 {object} map[string]uint
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /attempts/{id}/finish [post]
func (h *AttemptHandler) FinishAttempt(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	courseID, err := h.attemptService.Finish(c.Request.Context(), id, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"course_id": courseID})
}

// ListAttempts returns the user's attempts at a course's test
// @Summary List attempts
// @Tags attempts
// @Produce json
// @Param id path uint true "Course ID"
// @Success 200 {object} services.CourseAttemptsView
// @Failure 404 {object} ErrorResponse
// @Router /courses/{id}/attempts [get]
func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	courseID := h.parseIDParam(c, "id")
	if courseID == 0 {
		return
	}

	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	view, err := h.attemptService.ListAttempts(c.Request.Context(), courseID, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// parseQuestionNumber reads the 1-based question ordinal from the path. On
// failure it writes the 400 response itself and returns 0.
func (h *AttemptHandler) parseQuestionNumber(c *gin.Context) int {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid question number",
			Details: "must be a positive integer",
		})
		return 0
	}
	return number
}
