package services

import (
	"context"
	"time"

	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// GetByID retrieves a course by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course, or a not found error if the course does not exist.
	GetByID(ctx context.Context, id int) (*models.Course, error)
}

// EnrollmentRepository defines methods for enrollment data access
type EnrollmentRepository interface {
	// Enroll creates an enrollment and its progress rows atomically
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the enrolling student.
	// "courseID" is the ID of the course.
	// "now" is the enrollment timestamp.
	//
	// Returns the created enrollment with the number of seeded lessons.
	// A conflict error is returned if the student is already enrolled.
	Enroll(ctx context.Context, studentID, courseID int, now time.Time) (*models.EnrollResult, error)
	// GetByID retrieves an enrollment by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the enrollment.
	//
	// Returns the enrollment, or a not found error if it does not exist.
	GetByID(ctx context.Context, id int) (*models.Enrollment, error)
	// ListByStudent retrieves a page of a student's enrollments
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the student.
	// "limit" and "offset" select the page.
	//
	// Returns the enrollments and an error if any.
	ListByStudent(ctx context.Context, studentID, limit, offset int) ([]models.EnrollmentListItem, error)
	// CountByStudent counts a student's enrollments
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the student.
	CountByStudent(ctx context.Context, studentID int) (int, error)
	// ListByCourse retrieves a page of a course's enrollments
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "limit" and "offset" select the page.
	//
	// Returns the enrollments and an error if any.
	ListByCourse(ctx context.Context, courseID, limit, offset int) ([]models.EnrollmentListItem, error)
	// CountByCourse counts a course's enrollments
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	CountByCourse(ctx context.Context, courseID int) (int, error)
	// UpdateStatus sets the status of an enrollment
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the enrollment.
	// "status" is the new status.
	//
	// Returns a not found error if the enrollment does not exist.
	UpdateStatus(ctx context.Context, id int, status models.EnrollmentStatus) error
}

type enrollmentService struct {
	courseRepo     CourseRepository
	enrollmentRepo EnrollmentRepository
	progressRepo   ProgressRepository
	logger         *zap.Logger
	now            func() time.Time
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(
	courseRepo CourseRepository,
	enrollmentRepo EnrollmentRepository,
	progressRepo ProgressRepository,
	logger *zap.Logger,
) *enrollmentService {
	return &enrollmentService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		logger:         logger,
		now:            currentTime,
	}
}

// currentTime returns the current UTC time at the precision stored by the database
func currentTime() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Enroll enrolls the principal in a course
func (s *enrollmentService) Enroll(ctx context.Context, p models.Principal, req *models.EnrollRequest) (*models.EnrollResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, logUnexpected(s.logger, "failed to get course", err, zap.Int("courseID", req.CourseID))
	}

	result, err := s.enrollmentRepo.Enroll(ctx, p.UserID, req.CourseID, s.now())
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to enroll", err,
			zap.Int("studentID", p.UserID),
			zap.Int("courseID", req.CourseID),
		)
	}

	s.logger.Info("student enrolled",
		zap.Int("enrollmentID", result.Enrollment.ID),
		zap.Int("studentID", p.UserID),
		zap.Int("courseID", req.CourseID),
		zap.Int("lessons", result.TotalLessons),
	)

	return result, nil
}

// GetEnrollmentDetails retrieves an enrollment with its course and progress rows
func (s *enrollmentService) GetEnrollmentDetails(ctx context.Context, p models.Principal, id int) (*models.EnrollmentDetails, error) {
	enrollment, course, err := s.loadAuthorized(ctx, p, id)
	if err != nil {
		return nil, err
	}

	progress, err := s.progressRepo.ListByEnrollment(ctx, id)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to list progress", err, zap.Int("enrollmentID", id))
	}

	return &models.EnrollmentDetails{
		Enrollment: enrollment,
		Course:     course,
		Progress:   progress,
	}, nil
}

// UpdateEnrollmentStatus changes the status of an enrollment
func (s *enrollmentService) UpdateEnrollmentStatus(ctx context.Context, p models.Principal, id int, req *models.UpdateEnrollmentStatusRequest) (*models.Enrollment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	enrollment, _, err := s.loadAuthorized(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if err := s.enrollmentRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, logUnexpected(s.logger, "failed to update enrollment status", err, zap.Int("enrollmentID", id))
	}

	enrollment.Status = req.Status
	enrollment.UpdatedAt = s.now()
	return enrollment, nil
}

// ListEnrollmentsForStudent retrieves a page of the principal's enrollments
func (s *enrollmentService) ListEnrollmentsForStudent(ctx context.Context, p models.Principal, page, limit int) (*models.PageResponse[models.EnrollmentListItem], error) {
	total, err := s.enrollmentRepo.CountByStudent(ctx, p.UserID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to count enrollments", err, zap.Int("studentID", p.UserID))
	}

	return s.page(total, page, limit, func(limit, offset int) ([]models.EnrollmentListItem, error) {
		return s.enrollmentRepo.ListByStudent(ctx, p.UserID, limit, offset)
	})
}

// ListEnrollmentsForCourse retrieves a page of a course's enrollments for its instructor
func (s *enrollmentService) ListEnrollmentsForCourse(ctx context.Context, p models.Principal, courseID, page, limit int) (*models.PageResponse[models.EnrollmentListItem], error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to get course", err, zap.Int("courseID", courseID))
	}
	if err := authorizeCourseOwner(p, course); err != nil {
		return nil, err
	}

	total, err := s.enrollmentRepo.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to count enrollments", err, zap.Int("courseID", courseID))
	}

	return s.page(total, page, limit, func(limit, offset int) ([]models.EnrollmentListItem, error) {
		return s.enrollmentRepo.ListByCourse(ctx, courseID, limit, offset)
	})
}

// page builds a page response, skipping the list query when the page is out of range
func (s *enrollmentService) page(total, page, limit int, list func(limit, offset int) ([]models.EnrollmentListItem, error)) (*models.PageResponse[models.EnrollmentListItem], error) {
	pagination := models.NewPagination(total, page, limit)

	items := []models.EnrollmentListItem{}
	if pagination.InRange() {
		var err error
		items, err = list(pagination.Limit, pagination.Offset())
		if err != nil {
			return nil, logUnexpected(s.logger, "failed to list enrollments", err)
		}
	}

	return &models.PageResponse[models.EnrollmentListItem]{
		Items:      items,
		Pagination: pagination,
	}, nil
}

// loadAuthorized loads an enrollment and its course and checks the principal may access them
func (s *enrollmentService) loadAuthorized(ctx context.Context, p models.Principal, id int) (*models.Enrollment, *models.Course, error) {
	return loadEnrollment(ctx, s.enrollmentRepo, s.courseRepo, s.logger, p, id)
}

// loadEnrollment is shared by services that act on a single enrollment
func loadEnrollment(
	ctx context.Context,
	enrollmentRepo EnrollmentRepository,
	courseRepo CourseRepository,
	logger *zap.Logger,
	p models.Principal,
	id int,
) (*models.Enrollment, *models.Course, error) {
	enrollment, err := enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, logUnexpected(logger, "failed to get enrollment", err, zap.Int("enrollmentID", id))
	}

	course, err := courseRepo.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return nil, nil, logUnexpected(logger, "failed to get course", err, zap.Int("courseID", enrollment.CourseID))
	}

	if err := authorizeEnrollment(p, enrollment, course); err != nil {
		return nil, nil, err
	}

	return enrollment, course, nil
}
