package handlers

import (
	"context"
	"errors"

	"github.com/learnhub/backend/internal/models"
)

// mockEnrollmentService is a mock implementation of EnrollmentService
type mockEnrollmentService struct {
	enrollResult *models.EnrollResult
	details      *models.EnrollmentDetails
	enrollment   *models.Enrollment
	page         *models.PageResponse[models.EnrollmentListItem]
	err          error

	gotPrincipal models.Principal
	gotID        int
	gotPage      int
	gotLimit     int
	gotCourseID  int
	gotStatus    models.EnrollmentStatus
}

func (m *mockEnrollmentService) Enroll(ctx context.Context, p models.Principal, req *models.EnrollRequest) (*models.EnrollResult, error) {
	m.gotPrincipal = p
	m.gotCourseID = req.CourseID
	return m.enrollResult, m.err
}

func (m *mockEnrollmentService) GetEnrollmentDetails(ctx context.Context, p models.Principal, id int) (*models.EnrollmentDetails, error) {
	m.gotPrincipal = p
	m.gotID = id
	return m.details, m.err
}

func (m *mockEnrollmentService) UpdateEnrollmentStatus(ctx context.Context, p models.Principal, id int, req *models.UpdateEnrollmentStatusRequest) (*models.Enrollment, error) {
	m.gotPrincipal = p
	m.gotID = id
	m.gotStatus = req.Status
	return m.enrollment, m.err
}

func (m *mockEnrollmentService) ListEnrollmentsForStudent(ctx context.Context, p models.Principal, page, limit int) (*models.PageResponse[models.EnrollmentListItem], error) {
	m.gotPrincipal = p
	m.gotPage = page
	m.gotLimit = limit
	return m.page, m.err
}

func (m *mockEnrollmentService) ListEnrollmentsForCourse(ctx context.Context, p models.Principal, courseID, page, limit int) (*models.PageResponse[models.EnrollmentListItem], error) {
	m.gotPrincipal = p
	m.gotCourseID = courseID
	m.gotPage = page
	m.gotLimit = limit
	return m.page, m.err
}

// mockProgressService is a mock implementation of ProgressService
type mockProgressService struct {
	recordResult *models.RecordProgressResponse
	enrollment   *models.EnrollmentProgressResponse
	lesson       *models.Progress
	summary      *models.CourseProgressSummary
	err          error

	gotRequest      *models.RecordProgressRequest
	gotEnrollmentID int
	gotLessonID     int
	gotCourseID     int
}

func (m *mockProgressService) RecordProgress(ctx context.Context, p models.Principal, req *models.RecordProgressRequest) (*models.RecordProgressResponse, error) {
	m.gotRequest = req
	return m.recordResult, m.err
}

func (m *mockProgressService) GetEnrollmentProgress(ctx context.Context, p models.Principal, enrollmentID int) (*models.EnrollmentProgressResponse, error) {
	m.gotEnrollmentID = enrollmentID
	return m.enrollment, m.err
}

func (m *mockProgressService) GetLessonProgress(ctx context.Context, p models.Principal, enrollmentID, lessonID int) (*models.Progress, error) {
	m.gotEnrollmentID = enrollmentID
	m.gotLessonID = lessonID
	return m.lesson, m.err
}

func (m *mockProgressService) GetCourseProgressSummary(ctx context.Context, p models.Principal, courseID int) (*models.CourseProgressSummary, error) {
	m.gotCourseID = courseID
	return m.summary, m.err
}

// mockAssessmentService is a mock implementation of AssessmentService
type mockAssessmentService struct {
	quizResult  *models.SubmitQuizResponse
	quizzes     []models.QuizSubmission
	submission  *models.AssignmentSubmission
	submissions []models.AssignmentSubmission
	err         error

	gotID    int
	gotScore *int
}

func (m *mockAssessmentService) SubmitQuiz(ctx context.Context, p models.Principal, req *models.SubmitQuizRequest) (*models.SubmitQuizResponse, error) {
	return m.quizResult, m.err
}

func (m *mockAssessmentService) ListQuizSubmissions(ctx context.Context, p models.Principal, quizID int) ([]models.QuizSubmission, error) {
	m.gotID = quizID
	return m.quizzes, m.err
}

func (m *mockAssessmentService) SubmitAssignment(ctx context.Context, p models.Principal, req *models.SubmitAssignmentRequest) (*models.AssignmentSubmission, error) {
	return m.submission, m.err
}

func (m *mockAssessmentService) GradeAssignment(ctx context.Context, p models.Principal, submissionID int, req *models.GradeAssignmentRequest) (*models.AssignmentSubmission, error) {
	m.gotID = submissionID
	m.gotScore = req.Score
	return m.submission, m.err
}

func (m *mockAssessmentService) ListAssignmentSubmissions(ctx context.Context, p models.Principal, assignmentID int) ([]models.AssignmentSubmission, error) {
	m.gotID = assignmentID
	return m.submissions, m.err
}

// mockPinger is a mock implementation of Pinger
type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.err
}

var errDatabase = errors.New("dial tcp 10.0.0.5:3306: connection refused")
