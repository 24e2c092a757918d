package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agrobot/internal/config"
	"agrobot/internal/infrastructure"
	"agrobot/internal/interfaces"
	httpiface "agrobot/internal/interfaces/http"
	"agrobot/internal/interfaces/telegram"
	"agrobot/internal/repository"
	"agrobot/internal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	logger := newLogger(cfg)

	// Connect to PostgreSQL and create the schema if absent
	pgClient, err := infrastructure.NewPostgresClient(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	// Repositories
	orderRepo := repository.NewOrderRepository(pgClient.Pool)
	chatLogRepo := repository.NewChatLogRepository(pgClient.Pool)
	knowledgeRepo := repository.NewKnowledgeRepository(pgClient.Pool)
	userRepo := repository.NewUserRepository(pgClient.Pool)

	// Admin auth
	auth := usecases.NewAuthUsecase(userRepo, cfg.JWTSecret)
	if err := auth.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Warn().Err(err).Msg("failed to ensure admin user")
	}

	// Outbound channels; each is optional and degrades to a logged drop
	var messenger interfaces.Messenger
	if cfg.Twilio.AccountSID != "" {
		messenger = infrastructure.NewTwilioWhatsAppClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, logger)
	} else {
		logger.Warn().Msg("Twilio credentials missing, WhatsApp channel disabled")
	}
	var email interfaces.EmailSender
	if cfg.SMTP.Host != "" {
		email = infrastructure.NewSMTPEmailClient(cfg.SMTP)
	} else {
		logger.Warn().Msg("SMTP server missing, email channel disabled")
	}
	sendLimiter := infrastructure.NewSendRateLimiter(1, 5)
	notifier := usecases.NewNotifier(messenger, email, sendLimiter, logger)

	// Scheduler: order reminders and the hourly weather check
	scheduler, err := infrastructure.NewScheduler(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create scheduler")
	}
	weather := usecases.NewWeatherService(cfg.WeatherAPIKey, logger)
	if err := scheduler.RunEvery(cfg.WeatherInterval, weather.Check); err != nil {
		logger.Error().Err(err).Msg("failed to schedule weather job")
	}
	scheduler.Start()

	orderService := usecases.NewOrderService(orderRepo, notifier, scheduler, cfg.ManagerEmail, cfg.ReminderDelay, logger)

	// Knowledge engine
	var ai interfaces.AIClient
	if cfg.OpenAIKey != "" {
		ai = infrastructure.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIFastModel, cfg.OpenAIEscalatedModel)
	} else {
		logger.Warn().Msg("OpenAI key missing, AI fallback disabled")
	}
	knowledge := usecases.NewKnowledgeService(knowledgeRepo, ai, logger)

	// HTTP server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	adminHandler := httpiface.NewAdminHandler(knowledgeRepo, chatLogRepo, orderRepo)
	authMiddleware := httpiface.NewMiddleware(cfg.JWTSecret)
	httpiface.SetupRoutes(r, orderService, auth, adminHandler, authMiddleware)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Telegram listener
	var router *telegram.Router
	if cfg.TelegramToken != "" {
		tgClient, err := infrastructure.NewTelegramClient(cfg.TelegramToken)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect Telegram bot")
		}
		router = telegram.NewRouter(tgClient.Bot, knowledge, chatLogRepo, cfg.TopicKeywords, cfg.Checklists, logger)
		router.Start()
	} else {
		logger.Warn().Msg("Telegram token missing, chat interface disabled")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	if router != nil {
		router.Stop()
	}
	if err := scheduler.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("scheduler shutdown failed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP shutdown failed")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = os.Stdout
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	if cfg.LogPretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out})
	}
	return logger
}
