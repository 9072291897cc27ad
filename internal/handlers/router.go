package handlers

import (
	"net/http"

	"github.com/aulanet/aulanet/internal/middleware"
	"github.com/aulanet/aulanet/internal/services"
	"github.com/aulanet/aulanet/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	authHandler        *AuthHandler
	courseHandler      *CourseHandler
	attemptHandler     *AttemptHandler
	achievementHandler *AchievementHandler
	reminderHandler    *ReminderHandler
	importHandler      *ImportHandler
	jwtSecret          string
}

func NewHandlerManager(
	userService services.UserService,
	courseService services.CourseService,
	attemptService services.AttemptService,
	achievementService services.AchievementService,
	reminderService services.ReminderService,
	importService services.ImportService,
	validator *utils.Validator,
	logger utils.Logger,
	jwtSecret string,
) *HandlerManager {
	return &HandlerManager{
		authHandler:        NewAuthHandler(userService, logger),
		courseHandler:      NewCourseHandler(courseService, logger),
		attemptHandler:     NewAttemptHandler(attemptService, validator, logger),
		achievementHandler: NewAchievementHandler(achievementService, logger),
		reminderHandler:    NewReminderHandler(reminderService, logger),
		importHandler:      NewImportHandler(importService, logger),
		jwtSecret:          jwtSecret,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "aulanet",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", hm.authHandler.Register)
			auth.POST("/login", hm.authHandler.Login)
		}

		// Everything below needs a session token.
		authed := v1.Group("")
		authed.Use(middleware.Auth(hm.jwtSecret))
		{
			courses := authed.Group("/courses")
			{
				courses.GET("", hm.courseHandler.ListCourses)
				courses.GET("/:id", hm.courseHandler.GetCourse)
				courses.GET("/:id/attempts", hm.attemptHandler.ListAttempts)
				courses.POST("/:id/test/import", hm.importHandler.ImportTest)
			}

			attempts := authed.Group("/attempts")
			{
				attempts.POST("", hm.attemptHandler.StartAttempt)
				attempts.GET("/:id/questions/:number", hm.attemptHandler.GetQuestionAttempt)
				attempts.PUT("/:id/questions/:number", hm.attemptHandler.AnswerQuestion)
				attempts.POST("/:id/finish", hm.attemptHandler.FinishAttempt)
				attempts.GET("/:id/result", hm.achievementHandler.GetAttemptResult)
			}

			reminders := authed.Group("/reminders")
			{
				reminders.POST("", hm.reminderHandler.CreateReminder)
				reminders.GET("", hm.reminderHandler.ListReminders)
			}
		}
	}
}
