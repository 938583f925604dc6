package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub/backend/internal/middleware"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// EnrollmentService is the interface that wraps methods for enrollment operations
type EnrollmentService interface {
	// Enroll enrolls the principal in a course
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "req" is the request to enroll.
	//
	// Returns the created enrollment with the number of seeded lessons and an error if any.
	Enroll(ctx context.Context, p models.Principal, req *models.EnrollRequest) (*models.EnrollResult, error)
	// GetEnrollmentDetails retrieves an enrollment with its course and progress rows
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "id" is the ID of the enrollment.
	//
	// Returns the enrollment details and an error if any.
	GetEnrollmentDetails(ctx context.Context, p models.Principal, id int) (*models.EnrollmentDetails, error)
	// UpdateEnrollmentStatus changes the status of an enrollment
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "id" is the ID of the enrollment.
	// "req" is the request carrying the new status.
	//
	// Returns the updated enrollment and an error if any.
	UpdateEnrollmentStatus(ctx context.Context, p models.Principal, id int, req *models.UpdateEnrollmentStatusRequest) (*models.Enrollment, error)
	// ListEnrollmentsForStudent retrieves a page of the principal's enrollments
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "page" is the page number to retrieve.
	// "limit" is the number of items per page.
	//
	// Returns a page of enrollments and an error if any.
	ListEnrollmentsForStudent(ctx context.Context, p models.Principal, page, limit int) (*models.PageResponse[models.EnrollmentListItem], error)
	// ListEnrollmentsForCourse retrieves a page of a course's enrollments for its instructor
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "courseID" is the ID of the course.
	// "page" is the page number to retrieve.
	// "limit" is the number of items per page.
	//
	// Returns a page of enrollments and an error if any.
	ListEnrollmentsForCourse(ctx context.Context, p models.Principal, courseID, page, limit int) (*models.PageResponse[models.EnrollmentListItem], error)
}

// EnrollmentHandler handles HTTP requests for enrollments
type EnrollmentHandler struct {
	BaseHandler
	service EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(svc EnrollmentService, logger *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all enrollment handler routes
func (h *EnrollmentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/enrollments", func(r chi.Router) {
		r.With(middleware.RequireRole(models.RoleStudent)).Post("/", h.Enroll)
		r.With(middleware.RequireRole(models.RoleStudent)).Get("/", h.ListMyEnrollments)
		r.With(middleware.RequireRole(models.RoleInstructor)).Get("/course/{courseId}", h.ListCourseEnrollments)
		r.Get("/{id}", h.GetEnrollment)
		r.Put("/{id}", h.UpdateStatus)
	})
}

// Enroll handles POST /enrollments
// @Summary Enroll in a course
// @Description Enroll the authenticated student in a course and seed one progress row per lesson
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.EnrollRequest true "Enrollment request"
// @Success 201 {object} models.EnrollResult "Enrollment created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Failure 409 {object} ErrorResponse "Already enrolled"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req models.EnrollRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Enroll(r.Context(), p, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, result)
}

// ListMyEnrollments handles GET /enrollments
// @Summary List my enrollments
// @Description Get a page of the authenticated student's enrollments, newest first
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.PageResponse[models.EnrollmentListItem] "Page of enrollments"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /enrollments [get]
func (h *EnrollmentHandler) ListMyEnrollments(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	page, limit := pageParams(r)
	result, err := h.service.ListEnrollmentsForStudent(r.Context(), p, page, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// ListCourseEnrollments handles GET /enrollments/course/{courseId}
// @Summary List course enrollments
// @Description Get a page of enrollments of a course owned by the authenticated instructor
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.PageResponse[models.EnrollmentListItem] "Page of enrollments"
// @Failure 400 {object} ErrorResponse "Invalid course ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the course instructor"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /enrollments/course/{courseId} [get]
func (h *EnrollmentHandler) ListCourseEnrollments(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	courseID, ok := h.pathID(w, r, "courseId")
	if !ok {
		return
	}

	page, limit := pageParams(r)
	result, err := h.service.ListEnrollmentsForCourse(r.Context(), p, courseID, page, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetEnrollment handles GET /enrollments/{id}
// @Summary Get enrollment details
// @Description Get an enrollment with its course and progress rows. Allowed for the enrolled student and the course instructor.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} models.EnrollmentDetails "Enrollment details"
// @Failure 400 {object} ErrorResponse "Invalid enrollment ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Enrollment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /enrollments/{id} [get]
func (h *EnrollmentHandler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	details, err := h.service.GetEnrollmentDetails(r.Context(), p, id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, details)
}

// UpdateStatus handles PUT /enrollments/{id}
// @Summary Update enrollment status
// @Description Set the status of an enrollment to active, completed or dropped
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body models.UpdateEnrollmentStatusRequest true "New status"
// @Success 200 {object} models.Enrollment "Updated enrollment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Enrollment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /enrollments/{id} [put]
func (h *EnrollmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateEnrollmentStatusRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	enrollment, err := h.service.UpdateEnrollmentStatus(r.Context(), p, id, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, enrollment)
}
