package handlers

import (
	"net/http"

	"github.com/aulanet/aulanet/internal/services"
	"github.com/aulanet/aulanet/internal/utils"
	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	BaseHandler
	achievementService services.AchievementService
}

func NewAchievementHandler(achievementService services.AchievementService, logger utils.Logger) *AchievementHandler {
	return &AchievementHandler{
		BaseHandler:        NewBaseHandler(logger),
		achievementService: achievementService,
	}
}

// GetAttemptResult returns the finished-attempt summary, unlocking the course
// achievement on a passing score
// @Summary Get attempt result
// @Tags achievements
// @Produce json
// @Param id path uint true "Attempt ID"
// @Success 200 {object} services.AttemptResultView
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /attempts/{id}/result [get]
func (h *AchievementHandler) GetAttemptResult(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	result, err := h.achievementService.Resolve(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
