package models

import "time"

// ProgressStatus represents a student's consumption state of one lesson
type ProgressStatus string

const (
	ProgressStatusNotStarted ProgressStatus = "not-started"
	ProgressStatusInProgress ProgressStatus = "in-progress"
	ProgressStatusCompleted  ProgressStatus = "completed"
)

// Progress represents one lesson's progress within one enrollment
type Progress struct {
	ID               int            `json:"id"`
	EnrollmentID     int            `json:"enrollmentId"`
	LessonID         int            `json:"lessonId"`
	Status           ProgressStatus `json:"status"`
	WatchTimeSeconds int            `json:"watchTimeSeconds"`
	CompletedAt      *time.Time     `json:"completedAt"`
	LastAccessedAt   time.Time      `json:"lastAccessedAt"`
	Lesson           *LessonSummary `json:"lesson,omitempty"`
}

// LessonSummary is the lesson data embedded in progress responses
type LessonSummary struct {
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Order           int    `json:"order"`
}

// ProgressCounts holds the completed and total progress rows of an enrollment
type ProgressCounts struct {
	Completed int
	Total     int
}

// RecordProgressRequest represents a progress update for one lesson.
// Nil fields are left unchanged.
type RecordProgressRequest struct {
	EnrollmentID     int             `json:"enrollmentId" validate:"required,gt=0"`
	LessonID         int             `json:"lessonId" validate:"required,gt=0"`
	WatchTimeSeconds *int            `json:"watchTimeSeconds,omitempty" validate:"omitnil,gte=0"`
	Status           *ProgressStatus `json:"status,omitempty" validate:"omitnil,oneof=not-started in-progress completed"`
}

// RecordProgressResponse is returned after a progress update
type RecordProgressResponse struct {
	Progress             *Progress `json:"progress"`
	CompletionPercentage int       `json:"completionPercentage"`
}

// EnrollmentProgressResponse is the full progress view of one enrollment
type EnrollmentProgressResponse struct {
	Enrollment           *Enrollment `json:"enrollment"`
	Progress             []Progress  `json:"progress"`
	CompletedCount       int         `json:"completedCount"`
	TotalLessons         int         `json:"totalLessons"`
	CompletionPercentage int         `json:"completionPercentage"`
}

// EnrollmentProgressSummary is one enrollment's row in a course summary
type EnrollmentProgressSummary struct {
	EnrollmentID         int       `json:"enrollmentId"`
	StudentID            int       `json:"studentId"`
	CompletionPercentage int       `json:"completionPercentage"`
	CompletedLessons     int       `json:"completedLessons"`
	TotalLessons         int       `json:"totalLessons"`
	EnrolledAt           time.Time `json:"enrolledAt"`
}

// CourseProgressSummary aggregates progress over all enrollments of a course
type CourseProgressSummary struct {
	CourseID          int                         `json:"courseId"`
	TotalEnrollments  int                         `json:"totalEnrollments"`
	AverageCompletion int                         `json:"averageCompletion"`
	ProgressData      []EnrollmentProgressSummary `json:"progressData"`
}

// Apply overwrites the provided fields and touches LastAccessedAt.
// CompletedAt is stamped on every write with status completed and is never cleared.
func (p *Progress) Apply(watchTimeSeconds *int, status *ProgressStatus, now time.Time) {
	if watchTimeSeconds != nil {
		p.WatchTimeSeconds = *watchTimeSeconds
	}
	if status != nil {
		p.Status = *status
		if *status == ProgressStatusCompleted {
			completedAt := now
			p.CompletedAt = &completedAt
		}
	}
	p.LastAccessedAt = now
}
