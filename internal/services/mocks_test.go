package services

import (
	"context"
	"time"

	"github.com/learnhub/backend/internal/models"
)

// mockCourseRepository is a mock implementation of CourseRepository
type mockCourseRepository struct {
	courses map[int]*models.Course
	err     error
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	course, ok := m.courses[id]
	if !ok {
		return nil, errCourseMissing
	}
	copied := *course
	return &copied, nil
}

// mockLessonRepository is a mock implementation of LessonRepository
type mockLessonRepository struct {
	lessons map[int]*models.Lesson
	err     error
}

func (m *mockLessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	if m.err != nil {
		return nil, m.err
	}
	lesson, ok := m.lessons[id]
	if !ok {
		return nil, errLessonMissing
	}
	return lesson, nil
}

// mockEnrollmentRepository is a mock implementation of EnrollmentRepository
type mockEnrollmentRepository struct {
	enrollments map[int]*models.Enrollment
	items       []models.EnrollmentListItem
	total       int

	enrollResult *models.EnrollResult
	enrollErr    error
	getErr       error
	listErr      error
	countErr     error
	updateErr    error

	enrollCalled  bool
	enrolledAt    time.Time
	listCalled    bool
	listLimit     int
	listOffset    int
	updatedStatus models.EnrollmentStatus
}

func (m *mockEnrollmentRepository) Enroll(ctx context.Context, studentID, courseID int, now time.Time) (*models.EnrollResult, error) {
	m.enrollCalled = true
	m.enrolledAt = now
	if m.enrollErr != nil {
		return nil, m.enrollErr
	}
	return m.enrollResult, nil
}

func (m *mockEnrollmentRepository) GetByID(ctx context.Context, id int) (*models.Enrollment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	enrollment, ok := m.enrollments[id]
	if !ok {
		return nil, errEnrollmentMissing
	}
	copied := *enrollment
	return &copied, nil
}

func (m *mockEnrollmentRepository) ListByStudent(ctx context.Context, studentID, limit, offset int) ([]models.EnrollmentListItem, error) {
	return m.list(limit, offset)
}

func (m *mockEnrollmentRepository) CountByStudent(ctx context.Context, studentID int) (int, error) {
	return m.total, m.countErr
}

func (m *mockEnrollmentRepository) ListByCourse(ctx context.Context, courseID, limit, offset int) ([]models.EnrollmentListItem, error) {
	return m.list(limit, offset)
}

func (m *mockEnrollmentRepository) CountByCourse(ctx context.Context, courseID int) (int, error) {
	return m.total, m.countErr
}

func (m *mockEnrollmentRepository) UpdateStatus(ctx context.Context, id int, status models.EnrollmentStatus) error {
	m.updatedStatus = status
	return m.updateErr
}

func (m *mockEnrollmentRepository) list(limit, offset int) ([]models.EnrollmentListItem, error) {
	m.listCalled = true
	m.listLimit = limit
	m.listOffset = offset
	if m.listErr != nil {
		return nil, m.listErr
	}
	end := offset + limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return m.items[offset:end], nil
}

// mockProgressRepository is a mock implementation of ProgressRepository
type mockProgressRepository struct {
	progress     *models.Progress
	rows         []models.Progress
	recordResult *models.RecordProgressResponse
	summary      []models.EnrollmentProgressSummary

	getErr     error
	listErr    error
	recordErr  error
	summaryErr error

	recordCalled bool
	recordedAt   time.Time
}

func (m *mockProgressRepository) GetByEnrollmentAndLesson(ctx context.Context, enrollmentID, lessonID int) (*models.Progress, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.progress, nil
}

func (m *mockProgressRepository) ListByEnrollment(ctx context.Context, enrollmentID int) ([]models.Progress, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rows, nil
}

func (m *mockProgressRepository) Record(ctx context.Context, enrollmentID, lessonID int, watchTimeSeconds *int, status *models.ProgressStatus, now time.Time) (*models.RecordProgressResponse, error) {
	m.recordCalled = true
	m.recordedAt = now
	if m.recordErr != nil {
		return nil, m.recordErr
	}
	return m.recordResult, nil
}

func (m *mockProgressRepository) CourseSummary(ctx context.Context, courseID int) ([]models.EnrollmentProgressSummary, error) {
	if m.summaryErr != nil {
		return nil, m.summaryErr
	}
	return m.summary, nil
}

// mockQuizRepository is a mock implementation of QuizRepository
type mockQuizRepository struct {
	quiz        *models.Quiz
	attempts    int
	submissions []models.QuizSubmission

	getErr    error
	countErr  error
	createErr error
	listErr   error

	created *models.QuizSubmission
}

func (m *mockQuizRepository) GetByID(ctx context.Context, id int) (*models.Quiz, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.quiz, nil
}

func (m *mockQuizRepository) CountAttempts(ctx context.Context, quizID, studentID int) (int, error) {
	return m.attempts, m.countErr
}

func (m *mockQuizRepository) CreateSubmission(ctx context.Context, submission *models.QuizSubmission) error {
	if m.createErr != nil {
		return m.createErr
	}
	submission.ID = 100
	m.created = submission
	return nil
}

func (m *mockQuizRepository) ListSubmissions(ctx context.Context, quizID int) ([]models.QuizSubmission, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.submissions, nil
}

// mockAssignmentRepository is a mock implementation of AssignmentRepository
type mockAssignmentRepository struct {
	assignment  *models.Assignment
	submission  *models.AssignmentSubmission
	submissions []models.AssignmentSubmission

	getErr           error
	createErr        error
	getSubmissionErr error
	gradeErr         error
	listErr          error

	created     *models.AssignmentSubmission
	gradeCalled bool
	gradedScore int
	gradedBy    int
}

func (m *mockAssignmentRepository) GetByID(ctx context.Context, id int) (*models.Assignment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.assignment, nil
}

func (m *mockAssignmentRepository) CreateSubmission(ctx context.Context, submission *models.AssignmentSubmission) error {
	if m.createErr != nil {
		return m.createErr
	}
	submission.ID = 200
	m.created = submission
	return nil
}

func (m *mockAssignmentRepository) GetSubmissionByID(ctx context.Context, id int) (*models.AssignmentSubmission, error) {
	if m.getSubmissionErr != nil {
		return nil, m.getSubmissionErr
	}
	copied := *m.submission
	return &copied, nil
}

func (m *mockAssignmentRepository) Grade(ctx context.Context, id, score int, feedback *string, gradedBy int, gradedAt time.Time) error {
	m.gradeCalled = true
	m.gradedScore = score
	m.gradedBy = gradedBy
	return m.gradeErr
}

func (m *mockAssignmentRepository) ListSubmissions(ctx context.Context, assignmentID int) ([]models.AssignmentSubmission, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.submissions, nil
}
