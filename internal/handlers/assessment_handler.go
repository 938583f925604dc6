package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub/backend/internal/middleware"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// AssessmentService is the interface that wraps methods for quiz and assignment operations
type AssessmentService interface {
	// SubmitQuiz grades and stores a quiz attempt
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "req" is the quiz submission.
	//
	// Returns the stored attempt with its score and an error if any.
	SubmitQuiz(ctx context.Context, p models.Principal, req *models.SubmitQuizRequest) (*models.SubmitQuizResponse, error)
	// ListQuizSubmissions retrieves every attempt at a quiz
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "quizID" is the ID of the quiz.
	//
	// Returns the attempts and an error if any.
	ListQuizSubmissions(ctx context.Context, p models.Principal, quizID int) ([]models.QuizSubmission, error)
	// SubmitAssignment stores an assignment submission
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "req" is the assignment submission.
	//
	// Returns the stored submission and an error if any.
	SubmitAssignment(ctx context.Context, p models.Principal, req *models.SubmitAssignmentRequest) (*models.AssignmentSubmission, error)
	// GradeAssignment grades an assignment submission
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "submissionID" is the ID of the submission.
	// "req" is the grade.
	//
	// Returns the graded submission and an error if any.
	GradeAssignment(ctx context.Context, p models.Principal, submissionID int, req *models.GradeAssignmentRequest) (*models.AssignmentSubmission, error)
	// ListAssignmentSubmissions retrieves every submission of an assignment
	//
	// "ctx" is the context for the request.
	// "p" is the authenticated principal.
	// "assignmentID" is the ID of the assignment.
	//
	// Returns the submissions and an error if any.
	ListAssignmentSubmissions(ctx context.Context, p models.Principal, assignmentID int) ([]models.AssignmentSubmission, error)
}

// AssessmentHandler handles HTTP requests for quizzes and assignments
type AssessmentHandler struct {
	BaseHandler
	service AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(svc AssessmentService, logger *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all assessment handler routes
func (h *AssessmentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/assessments", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleStudent))
			r.Post("/quiz/submit", h.SubmitQuiz)
			r.Post("/assignment/submit", h.SubmitAssignment)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleInstructor))
			r.Get("/quiz/{quizId}/submissions", h.ListQuizSubmissions)
			r.Put("/assignment/{id}/grade", h.GradeAssignment)
			r.Get("/assignment/{id}/submissions", h.ListAssignmentSubmissions)
		})
	})
}

// SubmitQuiz handles POST /assessments/quiz/submit
// @Summary Submit a quiz attempt
// @Description Grade the answers of the authenticated student and store the attempt
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SubmitQuizRequest true "Quiz answers"
// @Success 201 {object} models.SubmitQuizResponse "Graded attempt"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Quiz or enrollment not found"
// @Failure 409 {object} ErrorResponse "Attempt limit exceeded"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assessments/quiz/submit [post]
func (h *AssessmentHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req models.SubmitQuizRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.SubmitQuiz(r.Context(), p, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, result)
}

// ListQuizSubmissions handles GET /assessments/quiz/{quizId}/submissions
// @Summary List quiz attempts
// @Description Get every attempt at a quiz of a course owned by the authenticated instructor
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "Quiz ID"
// @Success 200 {array} models.QuizSubmission "Quiz attempts"
// @Failure 400 {object} ErrorResponse "Invalid quiz ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the course instructor"
// @Failure 404 {object} ErrorResponse "Quiz not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assessments/quiz/{quizId}/submissions [get]
func (h *AssessmentHandler) ListQuizSubmissions(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	quizID, ok := h.pathID(w, r, "quizId")
	if !ok {
		return
	}

	submissions, err := h.service.ListQuizSubmissions(r.Context(), p, quizID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, submissions)
}

// SubmitAssignment handles POST /assessments/assignment/submit
// @Summary Submit an assignment
// @Description Store the authenticated student's submission; lateness is fixed at submission time
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SubmitAssignmentRequest true "Assignment submission"
// @Success 201 {object} models.AssignmentSubmission "Stored submission"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Assignment or enrollment not found"
// @Failure 409 {object} ErrorResponse "Already submitted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assessments/assignment/submit [post]
func (h *AssessmentHandler) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req models.SubmitAssignmentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	submission, err := h.service.SubmitAssignment(r.Context(), p, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, submission)
}

// GradeAssignment handles PUT /assessments/assignment/{id}/grade
// @Summary Grade an assignment submission
// @Description Grade a submission of an assignment in a course owned by the authenticated instructor
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body models.GradeAssignmentRequest true "Grade"
// @Success 200 {object} models.AssignmentSubmission "Graded submission"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the course instructor"
// @Failure 404 {object} ErrorResponse "Submission not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assessments/assignment/{id}/grade [put]
func (h *AssessmentHandler) GradeAssignment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	submissionID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.GradeAssignmentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	submission, err := h.service.GradeAssignment(r.Context(), p, submissionID, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, submission)
}

// ListAssignmentSubmissions handles GET /assessments/assignment/{id}/submissions
// @Summary List assignment submissions
// @Description Get every submission of an assignment in a course owned by the authenticated instructor
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {array} models.AssignmentSubmission "Submissions"
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the course instructor"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assessments/assignment/{id}/submissions [get]
func (h *AssessmentHandler) ListAssignmentSubmissions(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	assignmentID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	submissions, err := h.service.ListAssignmentSubmissions(r.Context(), p, assignmentID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, submissions)
}
