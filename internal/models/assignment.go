package models

import "time"

// AssignmentSubmissionStatus represents the grading state of a submission
type AssignmentSubmissionStatus string

const (
	AssignmentSubmissionStatusSubmitted AssignmentSubmissionStatus = "submitted"
	AssignmentSubmissionStatusGraded    AssignmentSubmissionStatus = "graded"
)

// Assignment represents an assignment attached to a course
type Assignment struct {
	ID          int        `json:"id"`
	CourseID    int        `json:"courseId"`
	LessonID    *int       `json:"lessonId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	MaxScore    int        `json:"maxScore"`
}

// AssignmentSubmission represents a student's submission for an assignment
type AssignmentSubmission struct {
	ID             int                        `json:"id"`
	AssignmentID   int                        `json:"assignmentId"`
	StudentID      int                        `json:"studentId"`
	EnrollmentID   int                        `json:"enrollmentId"`
	TextSubmission *string                    `json:"textSubmission"`
	FileURL        *string                    `json:"fileUrl"`
	FileName       *string                    `json:"fileName"`
	SubmittedAt    time.Time                  `json:"submittedAt"`
	IsLate         bool                       `json:"isLate"`
	Score          *int                       `json:"score"`
	Feedback       *string                    `json:"feedback"`
	GradedBy       *int                       `json:"gradedBy"`
	GradedAt       *time.Time                 `json:"gradedAt"`
	Status         AssignmentSubmissionStatus `json:"status"`
}

// SubmitAssignmentRequest represents an assignment submission
type SubmitAssignmentRequest struct {
	AssignmentID   int     `json:"assignmentId" validate:"required,gt=0"`
	EnrollmentID   int     `json:"enrollmentId" validate:"required,gt=0"`
	TextSubmission *string `json:"textSubmission,omitempty"`
	FileURL        *string `json:"fileUrl,omitempty" validate:"omitempty,url"`
	FileName       *string `json:"fileName,omitempty" validate:"omitempty,max=255"`
}

// GradeAssignmentRequest represents an instructor's grade for a submission
type GradeAssignmentRequest struct {
	Score    *int    `json:"score" validate:"required,gte=0"`
	Feedback *string `json:"feedback,omitempty"`
}
