package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aulanet/aulanet/internal/cache"
	"github.com/aulanet/aulanet/internal/config"
	"github.com/aulanet/aulanet/internal/handlers"
	"github.com/aulanet/aulanet/internal/mailer"
	"github.com/aulanet/aulanet/internal/models"
	"github.com/aulanet/aulanet/internal/repositories/postgres"
	"github.com/aulanet/aulanet/internal/scheduler"
	"github.com/aulanet/aulanet/internal/services"
	"github.com/aulanet/aulanet/internal/utils"
	"github.com/aulanet/aulanet/pkg"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogLogger := utils.ToSlogLogger(logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Course{},
		&models.Topic{},
		&models.Test{},
		&models.Question{},
		&models.Answer{},
		&models.User{},
		&models.TestAttempt{},
		&models.QuestionAttempt{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Reminder{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	repo := postgres.NewRepository(db)
	defer repo.Close()

	var cacheService cache.CacheService
	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, running without cache", "error", err)
	} else {
		cacheService = cache.NewRedisCache(redisClient, slogLogger)
		defer redisClient.Close()
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogLogger)
	if err != nil {
		log.Fatalf("Error creating event publisher: %v", err)
	}
	defer publisher.Close()

	validator := utils.NewValidator()
	smtpMailer := mailer.NewSMTPMailer(
		cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Password)

	userService := services.NewUserService(repo, slogLogger, validator, cfg.JWTSecret, cfg.JWTTTL)
	courseService := services.NewCourseService(repo, slogLogger, cacheService)
	attemptService := services.NewAttemptService(repo, slogLogger, publisher)
	achievementService := services.NewAchievementService(repo, slogLogger, publisher)
	reminderService := services.NewReminderService(repo, slogLogger, validator, smtpMailer)
	importService := services.NewImportService(repo, slogLogger, cacheService)

	reminderScheduler := scheduler.New(reminderService, slogLogger, time.Minute)
	if err := reminderScheduler.Start(); err != nil {
		log.Fatalf("Error starting scheduler: %v", err)
	}
	defer reminderScheduler.Stop()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(
		userService,
		courseService,
		attemptService,
		achievementService,
		reminderService,
		importService,
		validator,
		logger,
		cfg.JWTSecret,
	)
	handlerManager.SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
}
