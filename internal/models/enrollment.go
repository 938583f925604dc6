package models

import "time"

// EnrollmentStatus represents the lifecycle state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

// Enrollment represents one student's registration in one course
type Enrollment struct {
	ID                   int              `json:"id"`
	StudentID            int              `json:"studentId"`
	CourseID             int              `json:"courseId"`
	EnrolledAt           time.Time        `json:"enrolledAt"`
	Status               EnrollmentStatus `json:"status"`
	CompletionPercentage int              `json:"completionPercentage"`
	LastAccessedAt       time.Time        `json:"lastAccessedAt"`
	LastAccessedLessonID *int             `json:"lastAccessedLessonId"`
	CertificatePath      *string          `json:"certificatePath"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

// EnrollmentListItem is an enrollment with the course title for list responses
type EnrollmentListItem struct {
	Enrollment
	CourseTitle string `json:"courseTitle"`
}

// EnrollmentDetails is an enrollment with its course and nested progress rows
type EnrollmentDetails struct {
	Enrollment *Enrollment `json:"enrollment"`
	Course     *Course     `json:"course"`
	Progress   []Progress  `json:"progress"`
}

// EnrollResult is returned by a successful enrollment
type EnrollResult struct {
	Enrollment   *Enrollment `json:"enrollment"`
	TotalLessons int         `json:"totalLessons"`
}

// EnrollRequest represents a request to enroll the caller in a course
type EnrollRequest struct {
	CourseID int `json:"courseId" validate:"required,gt=0"`
}

// UpdateEnrollmentStatusRequest represents a request to change an enrollment's status
type UpdateEnrollmentStatusRequest struct {
	Status EnrollmentStatus `json:"status" validate:"required,oneof=active completed dropped"`
}
