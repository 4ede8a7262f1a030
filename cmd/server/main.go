package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "github.com/Charan908515/book-credit-exchange/internal/api/http"
	"github.com/Charan908515/book-credit-exchange/internal/config"
	"github.com/Charan908515/book-credit-exchange/internal/logger"
	"github.com/Charan908515/book-credit-exchange/internal/repository/postgres"
	"github.com/Charan908515/book-credit-exchange/internal/security"
	"github.com/Charan908515/book-credit-exchange/internal/service"
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
	logger.Info("Starting Book Credit Exchange Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

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

	// Initialize Services
	emailService := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.From,
		cfg.Email.FromName,
	)

	authService := service.NewAuthService(
		store.UserRepository,
		emailService,
		tokenManager,
		cfg.Signup.InitialCredits,
		cfg.Signup.OTPExpiryMinutes,
	)

	userService := service.NewUserService(
		store.UserRepository,
	)

	bookService := service.NewBookService(
		store.BookRepository,
		store.UserRepository,
	)

	requestService := service.NewRequestService(
		store.RequestRepository,
		store.BookRepository,
		store.UserRepository,
	)

	exchangeService := service.NewExchangeService(
		store.ExchangeRepository,
	)

	ledgerService := service.NewLedgerService(
		store.LedgerRepository,
	)

	// Initialize HTTP router
	router := httpapi.NewRouter(
		authService,
		userService,
		bookService,
		requestService,
		exchangeService,
		ledgerService,
		tokenManager,
	)

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
