package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/learnhub/backend/docs"
	"github.com/learnhub/backend/internal/auth"
	"github.com/learnhub/backend/internal/config"
	"github.com/learnhub/backend/internal/database"
	"github.com/learnhub/backend/internal/logger"
	"github.com/learnhub/backend/internal/server"
	"go.uber.org/zap"
)

// @title LearnHub Enrollment API
// @version 1.0
// @description Enrollment, lesson progress and assessment API

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Access token as "Bearer <token>"
func main() {
	issueToken := flag.Bool("issue-token", false, "print an access token for -user-id and -role, then exit")
	userID := flag.Int("user-id", 0, "user ID embedded in the issued token")
	role := flag.Int("role", 1, "role embedded in the issued token (1 student, 2 instructor, 3 admin)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	if *issueToken {
		token, err := tokenGenerator.GenerateAccessToken(*userID, *role)
		if err != nil {
			log.Fatalf("Failed to issue token: %v\n", err)
		}
		fmt.Println(token)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting LearnHub enrollment service")

	// Connect to database
	db, err := database.Connect(context.Background(), cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db, cfg.Server.MigrationsPath); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	r := server.NewRouter(db, tokenGenerator, server.Options{
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		MaxRequestBytes:   cfg.Server.MaxRequestBytes,
		SwaggerURL:        fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port),
	}, logger.Logger)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
