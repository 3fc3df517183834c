package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/memory"
	"go-portfolio-backend/internal/repository/postgres"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/captcha"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/telegram"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio contact backend", "port", cfg.Port)

	// 3. Setup Submission Store. Without a DATABASE_URL the pipeline still
	// runs; submissions only live in memory for the process lifetime.
	var submissionRepo domain.SubmissionRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		submissionRepo = postgres.NewSubmissionRepository(dbPool)
	} else {
		submissionRepo = memory.NewSubmissionRepository()
	}

	// 4. Setup Redis for rate limiting (optional)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup pipeline collaborators
	verifier := captcha.NewTurnstile(captcha.Config{
		SecretKey: cfg.TurnstileSecretKey,
		VerifyURL: cfg.TurnstileVerifyURL,
		BypassDev: cfg.TurnstileBypassDev,
	}, nil, logger.Log)

	mailer := email.NewService(cfg.ResendAPIKey, cfg.ResendFromEmail, "", nil, logger.Log)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - confirmation emails disabled")
	}

	chat := telegram.NewNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, "", nil, logger.Log)
	if !chat.IsConfigured() {
		logger.Log.Info("Telegram channel not configured - chat notifications disabled")
	}

	// 6. Setup UseCases
	contactUC := usecase.NewContactUsecase(submissionRepo, verifier, mailer, chat, cfg.DefaultLocale, logger.Log)
	adminUC := usecase.NewAdminUsecase(submissionRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		AdminUC:   adminUC,
		Config:    cfg,
		Log:       logger.Log,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
