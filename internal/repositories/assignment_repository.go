package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/learnhub/backend/internal/apperrors"
	"github.com/learnhub/backend/internal/models"
)

var (
	// ErrAssignmentNotFound is returned when an assignment does not exist
	ErrAssignmentNotFound = apperrors.NotFound("assignment not found")
	// ErrSubmissionNotFound is returned when an assignment submission does not exist
	ErrSubmissionNotFound = apperrors.NotFound("submission not found")
	// ErrAlreadySubmitted is returned when the enrollment already has a submission for the assignment
	ErrAlreadySubmitted = apperrors.Conflict("assignment already submitted")
)

const submissionColumns = `
	id, assignment_id, student_id, enrollment_id, text_submission, file_url, file_name,
	submitted_at, is_late, score, feedback, graded_by, graded_at, status`

func scanSubmission(row rowScanner) (models.AssignmentSubmission, error) {
	var s models.AssignmentSubmission
	var text, fileURL, fileName, feedback sql.NullString
	var score, gradedBy sql.NullInt64
	var gradedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.AssignmentID,
		&s.StudentID,
		&s.EnrollmentID,
		&text,
		&fileURL,
		&fileName,
		&s.SubmittedAt,
		&s.IsLate,
		&score,
		&feedback,
		&gradedBy,
		&gradedAt,
		&s.Status,
	)
	if err != nil {
		return s, err
	}

	s.TextSubmission = nullStringPtr(text)
	s.FileURL = nullStringPtr(fileURL)
	s.FileName = nullStringPtr(fileName)
	s.Score = nullIntPtr(score)
	s.Feedback = nullStringPtr(feedback)
	s.GradedBy = nullIntPtr(gradedBy)
	s.GradedAt = nullTimePtr(gradedAt)
	return s, nil
}

type assignmentRepository struct {
	db *sql.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *sql.DB) *assignmentRepository {
	return &assignmentRepository{
		db: db,
	}
}

// GetByID retrieves an assignment by its ID
func (r *assignmentRepository) GetByID(ctx context.Context, id int) (*models.Assignment, error) {
	query := `
		SELECT id, course_id, lesson_id, title, description, due_date, max_score
		FROM assignments
		WHERE id = ?
		LIMIT 1
	`

	var a models.Assignment
	var lessonID sql.NullInt64
	var dueDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.CourseID,
		&lessonID,
		&a.Title,
		&a.Description,
		&dueDate,
		&a.MaxScore,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment by id: %w", err)
	}

	a.LessonID = nullIntPtr(lessonID)
	a.DueDate = nullTimePtr(dueDate)
	return &a, nil
}

// CreateSubmission stores a new assignment submission
func (r *assignmentRepository) CreateSubmission(ctx context.Context, s *models.AssignmentSubmission) error {
	query := `
		INSERT INTO assignment_submissions (
			assignment_id, student_id, enrollment_id, text_submission, file_url, file_name,
			submitted_at, is_late, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		s.AssignmentID,
		s.StudentID,
		s.EnrollmentID,
		s.TextSubmission,
		s.FileURL,
		s.FileName,
		s.SubmittedAt,
		s.IsLate,
		s.Status,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrAlreadySubmitted
		}
		return fmt.Errorf("failed to create assignment submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	s.ID = int(id)
	return nil
}

// GetSubmissionByID retrieves an assignment submission by its ID
func (r *assignmentRepository) GetSubmissionByID(ctx context.Context, id int) (*models.AssignmentSubmission, error) {
	query := `SELECT ` + submissionColumns + `
		FROM assignment_submissions
		WHERE id = ?
		LIMIT 1
	`

	s, err := scanSubmission(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment submission: %w", err)
	}

	return &s, nil
}

// Grade stores the score and feedback of a submission and marks it graded
func (r *assignmentRepository) Grade(ctx context.Context, id, score int, feedback *string, gradedBy int, gradedAt time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE assignment_submissions
		SET score = ?, feedback = ?, graded_by = ?, graded_at = ?, status = ?
		WHERE id = ?
	`, score, feedback, gradedBy, gradedAt, models.AssignmentSubmissionStatusGraded, id)
	if err != nil {
		return fmt.Errorf("failed to grade assignment submission: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

// ListSubmissions retrieves every submission of an assignment, newest first
func (r *assignmentRepository) ListSubmissions(ctx context.Context, assignmentID int) ([]models.AssignmentSubmission, error) {
	query := `SELECT ` + submissionColumns + `
		FROM assignment_submissions
		WHERE assignment_id = ?
		ORDER BY submitted_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment submissions: %w", err)
	}
	defer rows.Close()

	submissions := []models.AssignmentSubmission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment submission: %w", err)
		}
		submissions = append(submissions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment submissions: %w", err)
	}

	return submissions, nil
}
