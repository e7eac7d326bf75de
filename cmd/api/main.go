package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"happenly/config"
	authadapter "happenly/internal/adapters/auth"
	emailadapter "happenly/internal/adapters/email"
	httpdelivery "happenly/internal/delivery/http"
	"happenly/internal/delivery/http/controllers"
	"happenly/internal/delivery/http/middleware"
	"happenly/internal/repository/postgres"
	"happenly/internal/scheduler"
	"happenly/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Happenly API
// @version 1.0
// @description Event planning backend: events, guests, vendors, tasks, dashboards, and calendar export.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	if err := postgres.RunMigrations(cfg.DBUrl); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	guestRepo := postgres.NewGuestRepository(db)
	vendorRepo := postgres.NewVendorRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(bcrypt.DefaultCost)
	tokenIssuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := authadapter.NewJWTVerifier(cfg.JWTSecret)
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.Mailer.SESRegion,
			AccessKeyID:     cfg.Mailer.SESAccessKeyID,
			SecretAccessKey: cfg.Mailer.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// Services
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	authService := services.NewAuthService(userRepo, hasher, tokenIssuer, cfg.JWTExpiry, emailService, logger)
	eventService := services.NewEventService(eventRepo, guestRepo, vendorRepo, taskRepo, serviceTimeout)
	dashboardService := services.NewDashboardService(eventRepo, guestRepo, vendorRepo, taskRepo, serviceTimeout)
	calendarService := services.NewCalendarService(eventRepo, logger, serviceTimeout)

	// HTTP
	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:      controllers.NewAuthController(logger, authService),
		Event:     controllers.NewEventController(logger, eventService),
		Guest:     controllers.NewGuestController(logger, eventService),
		Vendor:    controllers.NewVendorController(logger, eventService),
		Task:      controllers.NewTaskController(logger, eventService),
		Dashboard: controllers.NewDashboardController(logger, dashboardService),
		Calendar:  controllers.NewCalendarController(logger, calendarService),
	}, tokenVerifier, logger)

	handler := middleware.CORS(cfg.CORSAllowedOrigins,
		middleware.RequestID(
			middleware.Metrics(
				middleware.Logging(logger, mux))))

	reminders := scheduler.NewReminderScheduler(taskRepo, emailService, logger)
	if err := reminders.Start(cfg.ReminderCron); err != nil {
		logger.Error("failed to start reminder scheduler", "err", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	reminders.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
