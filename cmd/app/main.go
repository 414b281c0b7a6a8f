package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gym-trainer-service/api"
	"gym-trainer-service/internal/config"
	"gym-trainer-service/internal/database"
	"gym-trainer-service/internal/handler"
	"gym-trainer-service/internal/metrics"
	"gym-trainer-service/internal/repository"
	"gym-trainer-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
	}

	// База данных (database/sql) + миграции
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// SQLC queries и транзакции
	queries := database.New(db)
	txManager := database.NewTxManager(db)

	// Репозитории
	userRepo := repository.NewUserRepository(queries)
	trainingTypeRepo := repository.NewTrainingTypeRepository(queries)
	trainerRepo := repository.NewTrainerRepository(queries)

	// Метрики
	m := metrics.New()

	// Use Cases
	userUC := usecase.NewUserUseCase(userRepo, cfg.PasswordLength, cfg.BcryptCost)
	authService := usecase.NewPasswordAuthenticator()
	trainerUC := usecase.NewTrainerUseCase(
		trainerRepo,
		trainingTypeRepo,
		userUC,
		authService,
		txManager,
		m.FreeActiveTrainers,
		logger,
	)
	trainingTypeUC := usecase.NewTrainingTypeUseCase(trainingTypeRepo)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(trainerUC, trainingTypeUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
