package handlers

import (
	"net/http"

	"github.com/aulanet/aulanet/internal/services"
	"github.com/aulanet/aulanet/internal/utils"
	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	BaseHandler
	reminderService services.ReminderService
}

func NewReminderHandler(reminderService services.ReminderService, logger utils.Logger) *ReminderHandler {
	return &ReminderHandler{
		BaseHandler:     NewBaseHandler(logger),
		reminderService: reminderService,
	}
}

// CreateReminder schedules a study-reminder mail
// @Summary Create reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminder body services.CreateReminderRequest true "Reminder data"
// @Success 201 {object} models.Reminder
// @Failure 400 {object} ErrorResponse
// @Router /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req services.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	reminder, err := h.reminderService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// ListReminders returns the user's pending reminders
// @Summary List reminders
// @Tags reminders
// @Produce json
// @Success 200 {array} models.Reminder
// @Router /reminders [get]
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == 0 {
		return
	}

	reminders, err := h.reminderService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminders)
}
