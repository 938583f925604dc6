package services

import (
	"context"
	"time"

	"github.com/learnhub/backend/internal/apperrors"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetByID retrieves a lesson by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the lesson.
	//
	// Returns the lesson, or a not found error if it does not exist.
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
}

// ProgressRepository defines methods for progress data access
type ProgressRepository interface {
	// GetByEnrollmentAndLesson retrieves the progress of one lesson within an enrollment
	//
	// "ctx" is the context for the request.
	// "enrollmentID" is the ID of the enrollment.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the progress with lesson info, or a not found error.
	GetByEnrollmentAndLesson(ctx context.Context, enrollmentID, lessonID int) (*models.Progress, error)
	// ListByEnrollment retrieves all progress rows of an enrollment in lesson order
	//
	// "ctx" is the context for the request.
	// "enrollmentID" is the ID of the enrollment.
	//
	// Returns the progress rows with lesson info and an error if any.
	ListByEnrollment(ctx context.Context, enrollmentID int) ([]models.Progress, error)
	// Record applies a progress update and recomputes the enrollment completion percentage atomically
	//
	// "ctx" is the context for the request.
	// "enrollmentID" and "lessonID" identify the progress row.
	// "watchTimeSeconds" and "status" are the fields to overwrite; nil leaves a field unchanged.
	// "now" is the access timestamp.
	//
	// Returns the updated progress with the new percentage, or a not found error
	// if the enrollment or the progress row does not exist.
	Record(ctx context.Context, enrollmentID, lessonID int, watchTimeSeconds *int, status *models.ProgressStatus, now time.Time) (*models.RecordProgressResponse, error)
	// CourseSummary retrieves per-enrollment progress counts for a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns one summary per enrollment and an error if any.
	CourseSummary(ctx context.Context, courseID int) ([]models.EnrollmentProgressSummary, error)
}

var errLessonNotInCourse = apperrors.NotFound("lesson not found in this course")

type progressService struct {
	courseRepo     CourseRepository
	lessonRepo     LessonRepository
	enrollmentRepo EnrollmentRepository
	progressRepo   ProgressRepository
	logger         *zap.Logger
	now            func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(
	courseRepo CourseRepository,
	lessonRepo LessonRepository,
	enrollmentRepo EnrollmentRepository,
	progressRepo ProgressRepository,
	logger *zap.Logger,
) *progressService {
	return &progressService{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		logger:         logger,
		now:            currentTime,
	}
}

// RecordProgress updates one lesson's progress and returns the recomputed completion percentage
func (s *progressService) RecordProgress(ctx context.Context, p models.Principal, req *models.RecordProgressRequest) (*models.RecordProgressResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, _, err := loadEnrollment(ctx, s.enrollmentRepo, s.courseRepo, s.logger, p, req.EnrollmentID); err != nil {
		return nil, err
	}

	result, err := s.progressRepo.Record(ctx, req.EnrollmentID, req.LessonID, req.WatchTimeSeconds, req.Status, s.now())
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to record progress", err,
			zap.Int("enrollmentID", req.EnrollmentID),
			zap.Int("lessonID", req.LessonID),
		)
	}

	s.logger.Debug("progress recorded",
		zap.Int("enrollmentID", req.EnrollmentID),
		zap.Int("lessonID", req.LessonID),
		zap.String("status", string(result.Progress.Status)),
		zap.Int("completionPercentage", result.CompletionPercentage),
	)

	return result, nil
}

// GetEnrollmentProgress retrieves the progress rows of an enrollment with completion counts.
// The percentage is the stored value; it is not recomputed on read.
func (s *progressService) GetEnrollmentProgress(ctx context.Context, p models.Principal, enrollmentID int) (*models.EnrollmentProgressResponse, error) {
	enrollment, _, err := loadEnrollment(ctx, s.enrollmentRepo, s.courseRepo, s.logger, p, enrollmentID)
	if err != nil {
		return nil, err
	}

	progress, err := s.progressRepo.ListByEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to list progress", err, zap.Int("enrollmentID", enrollmentID))
	}

	completed := 0
	for _, row := range progress {
		if row.Status == models.ProgressStatusCompleted {
			completed++
		}
	}

	return &models.EnrollmentProgressResponse{
		Enrollment:           enrollment,
		Progress:             progress,
		CompletedCount:       completed,
		TotalLessons:         len(progress),
		CompletionPercentage: enrollment.CompletionPercentage,
	}, nil
}

// GetLessonProgress retrieves the progress of one lesson within an enrollment
func (s *progressService) GetLessonProgress(ctx context.Context, p models.Principal, enrollmentID, lessonID int) (*models.Progress, error) {
	enrollment, _, err := loadEnrollment(ctx, s.enrollmentRepo, s.courseRepo, s.logger, p, enrollmentID)
	if err != nil {
		return nil, err
	}

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to get lesson", err, zap.Int("lessonID", lessonID))
	}
	if lesson.CourseID != enrollment.CourseID {
		return nil, errLessonNotInCourse
	}

	progress, err := s.progressRepo.GetByEnrollmentAndLesson(ctx, enrollmentID, lessonID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to get progress", err,
			zap.Int("enrollmentID", enrollmentID),
			zap.Int("lessonID", lessonID),
		)
	}

	return progress, nil
}

// GetCourseProgressSummary aggregates stored completion over every enrollment of a course
func (s *progressService) GetCourseProgressSummary(ctx context.Context, p models.Principal, courseID int) (*models.CourseProgressSummary, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to get course", err, zap.Int("courseID", courseID))
	}
	if err := authorizeCourseOwner(p, course); err != nil {
		return nil, err
	}

	rows, err := s.progressRepo.CourseSummary(ctx, courseID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to get course progress", err, zap.Int("courseID", courseID))
	}
	if rows == nil {
		rows = []models.EnrollmentProgressSummary{}
	}

	return &models.CourseProgressSummary{
		CourseID:          courseID,
		TotalEnrollments:  len(rows),
		AverageCompletion: averageCompletion(rows),
		ProgressData:      rows,
	}, nil
}

// averageCompletion returns the mean stored percentage rounded half up, 0 when there are no rows
func averageCompletion(rows []models.EnrollmentProgressSummary) int {
	if len(rows) == 0 {
		return 0
	}
	sum := 0
	for _, row := range rows {
		sum += row.CompletionPercentage
	}
	return (2*sum + len(rows)) / (2 * len(rows))
}
