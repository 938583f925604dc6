package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub/backend/internal/middleware"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for lesson progress operations
type ProgressService interface {
	// RecordProgress updates the progress of one lesson and recomputes the enrollment percentage
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "req" is the progress update.
	//
	// Returns the updated progress with the new completion percentage and an error if any.
	RecordProgress(ctx context.Context, p models.Principal, req *models.RecordProgressRequest) (*models.RecordProgressResponse, error)
	// GetEnrollmentProgress retrieves every progress row of an enrollment
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "enrollmentID" is the ID of the enrollment.
	//
	// Returns the enrollment progress and an error if any.
	GetEnrollmentProgress(ctx context.Context, p models.Principal, enrollmentID int) (*models.EnrollmentProgressResponse, error)
	// GetLessonProgress retrieves the progress of one lesson in an enrollment
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "enrollmentID" is the ID of the enrollment.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the progress row and an error if any.
	GetLessonProgress(ctx context.Context, p models.Principal, enrollmentID, lessonID int) (*models.Progress, error)
	// GetCourseProgressSummary aggregates progress over every enrollment of a course
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "courseID" is the ID of the course.
	//
	// Returns the course summary and an error if any.
	GetCourseProgressSummary(ctx context.Context, p models.Principal, courseID int) (*models.CourseProgressSummary, error)
}

// ProgressHandler handles HTTP requests for lesson progress
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Route("/progress", func(r chi.Router) {
		r.Post("/", h.RecordProgress)
		r.With(middleware.RequireRole(models.RoleInstructor)).Get("/course/{courseId}", h.GetCourseSummary)
		r.Get("/lesson/{lessonId}/{enrollmentId}", h.GetLessonProgress)
		r.Get("/{enrollmentId}", h.GetEnrollmentProgress)
	})
}

// RecordProgress handles POST /progress
// @Summary Record lesson progress
// @Description Update watch time and status of a lesson and recompute the enrollment completion percentage
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RecordProgressRequest true "Progress update"
// @Success 200 {object} models.RecordProgressResponse "Updated progress"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Enrollment or progress not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /progress [post]
func (h *ProgressHandler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req models.RecordProgressRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.RecordProgress(r.Context(), p, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetEnrollmentProgress handles GET /progress/{enrollmentId}
// @Summary Get enrollment progress
// @Description Get every progress row of an enrollment with lesson info and completion counts
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param enrollmentId path int true "Enrollment ID"
// @Success 200 {object} models.EnrollmentProgressResponse "Enrollment progress"
// @Failure 400 {object} ErrorResponse "Invalid enrollment ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Enrollment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /progress/{enrollmentId} [get]
func (h *ProgressHandler) GetEnrollmentProgress(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	enrollmentID, ok := h.pathID(w, r, "enrollmentId")
	if !ok {
		return
	}

	result, err := h.service.GetEnrollmentProgress(r.Context(), p, enrollmentID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetLessonProgress handles GET /progress/lesson/{lessonId}/{enrollmentId}
// @Summary Get lesson progress
// @Description Get the progress of one lesson within an enrollment
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param lessonId path int true "Lesson ID"
// @Param enrollmentId path int true "Enrollment ID"
// @Success 200 {object} models.Progress "Lesson progress"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /progress/lesson/{lessonId}/{enrollmentId} [get]
func (h *ProgressHandler) GetLessonProgress(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	lessonID, ok := h.pathID(w, r, "lessonId")
	if !ok {
		return
	}
	enrollmentID, ok := h.pathID(w, r, "enrollmentId")
	if !ok {
		return
	}

	progress, err := h.service.GetLessonProgress(r.Context(), p, enrollmentID, lessonID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, progress)
}

// GetCourseSummary handles GET /progress/course/{courseId}
// @Summary Get course progress summary
// @Description Aggregate completion over every enrollment of a course owned by the authenticated instructor
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} models.CourseProgressSummary "Course summary"
// @Failure 400 {object} ErrorResponse "Invalid course ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the course instructor"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /progress/course/{courseId} [get]
func (h *ProgressHandler) GetCourseSummary(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	courseID, ok := h.pathID(w, r, "courseId")
	if !ok {
		return
	}

	summary, err := h.service.GetCourseProgressSummary(r.Context(), p, courseID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}
