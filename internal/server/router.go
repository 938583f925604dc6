// Package server wires repositories, services and handlers into the HTTP router
package server

import (
	"database/sql"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/learnhub/backend/internal/handlers"
	"github.com/learnhub/backend/internal/middleware"
	"github.com/learnhub/backend/internal/repositories"
	"github.com/learnhub/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// APIBasePath is the prefix of every versioned route
const APIBasePath = "/api/v1"

// Options configures the router middlewares
type Options struct {
	AllowedOrigins    []string
	RequestsPerMinute int
	MaxRequestBytes   int64
	SwaggerURL        string
}

// NewRouter builds the application router on top of db
func NewRouter(db *sql.DB, tokens middleware.TokenValidator, opts Options, logger *zap.Logger) chi.Router {
	// Initialize repositories
	courseRepo := repositories.NewCourseRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	enrollmentRepo := repositories.NewEnrollmentRepository(db)
	progressRepo := repositories.NewProgressRepository(db)
	quizRepo := repositories.NewQuizRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)

	// Initialize services
	enrollmentService := services.NewEnrollmentService(courseRepo, enrollmentRepo, progressRepo, logger)
	progressService := services.NewProgressService(courseRepo, lessonRepo, enrollmentRepo, progressRepo, logger)
	assessmentService := services.NewAssessmentService(courseRepo, enrollmentRepo, quizRepo, assignmentRepo, logger)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, logger)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.CORSMiddleware(opts.AllowedOrigins))
	if opts.RequestsPerMinute > 0 {
		r.Use(httprate.LimitByIP(opts.RequestsPerMinute, time.Minute))
	}
	if opts.MaxRequestBytes > 0 {
		r.Use(middleware.RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	}

	healthHandler.RegisterRoutes(r)

	if opts.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(opts.SwaggerURL)))
	}

	r.Route(APIBasePath, func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(tokens, logger))

		enrollmentHandler.RegisterRoutes(r)
		progressHandler.RegisterRoutes(r)
		assessmentHandler.RegisterRoutes(r)
	})

	return r
}
