package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "sejour-backend/internal/api/http"
	"sejour-backend/internal/config"
	"sejour-backend/internal/logger"
	"sejour-backend/internal/repository/postgres"
	"sejour-backend/internal/security"
	"sejour-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Séjour Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	events := service.NewNotificationDispatcher(store.NotificationRepository)
	userSvc := service.NewUserService(store.UserRepository, tokenManager, emailSvc, events)
	ledgerSvc := service.NewLedgerService(store.LedgerRepository, store.UserRepository, emailSvc, events)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.PropertyRepository,
		store.UserRepository,
		store.SettingsRepository,
		ledgerSvc,
		emailSvc,
		events,
	)
	propertySvc := service.NewPropertyService(store.PropertyRepository, store.UserRepository, emailSvc, events)
	conversationSvc := service.NewConversationService(store.MessageRepository, store.UserRepository, events)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)
	applicationSvc := service.NewHostApplicationService(store.HostApplicationRepository, store.UserRepository, emailSvc, events)
	settingsSvc := service.NewSettingsService(store.SettingsRepository, store.UserRepository)

	// Initialize Router
	router := httpapi.NewRouter(httpapi.Services{
		Users:         userSvc,
		Properties:    propertySvc,
		Bookings:      bookingSvc,
		Ledger:        ledgerSvc,
		Conversations: conversationSvc,
		Notifications: notificationSvc,
		Applications:  applicationSvc,
		Settings:      settingsSvc,
	}, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
