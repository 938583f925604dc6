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
	// ErrEnrollmentNotFound is returned when an enrollment does not exist
	ErrEnrollmentNotFound = apperrors.NotFound("enrollment not found")
	// ErrAlreadyEnrolled is returned when the student is already enrolled in the course
	ErrAlreadyEnrolled = apperrors.Conflict("already enrolled in this course")
)

const enrollmentColumns = `
	e.id, e.student_id, e.course_id, e.enrolled_at, e.status, e.completion_percentage,
	e.last_accessed_at, e.last_accessed_lesson_id, e.certificate_path, e.created_at, e.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEnrollment scans enrollmentColumns followed by any extra destinations
func scanEnrollment(row rowScanner, e *models.Enrollment, extra ...any) error {
	var lastLessonID sql.NullInt64
	var certificatePath sql.NullString

	dest := []any{
		&e.ID,
		&e.StudentID,
		&e.CourseID,
		&e.EnrolledAt,
		&e.Status,
		&e.CompletionPercentage,
		&e.LastAccessedAt,
		&lastLessonID,
		&certificatePath,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}

	e.LastAccessedLessonID = nullIntPtr(lastLessonID)
	e.CertificatePath = nullStringPtr(certificatePath)
	return nil
}

type enrollmentRepository struct {
	db *sql.DB
}

// progressInsertBatchSize bounds the rows per progress INSERT so a statement
// stays under MySQL's 65535 placeholder limit.
var progressInsertBatchSize = 1000

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB) *enrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// Enroll creates an enrollment, seeds a not-started progress row for every lesson
// of the course and increments the course student counter in one transaction
func (r *enrollmentRepository) Enroll(ctx context.Context, studentID, courseID int, now time.Time) (*models.EnrollResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Enrollments of one course serialize on the course row, which also keeps
	// the later counter update from deadlocking against concurrent inserts.
	var lockedID int
	err = tx.QueryRowContext(ctx, `SELECT id FROM courses WHERE id = ? FOR UPDATE`, courseID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to lock course: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO enrollments (student_id, course_id, enrolled_at, status, completion_percentage, last_accessed_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`, studentID, courseID, now, models.EnrollmentStatusActive, now)
	if err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrAlreadyEnrolled
		}
		if isMissingReference(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	lessonIDs, err := lessonIDsByCourse(ctx, tx, courseID)
	if err != nil {
		return nil, err
	}

	for start := 0; start < len(lessonIDs); start += progressInsertBatchSize {
		batch := lessonIDs[start:min(start+progressInsertBatchSize, len(lessonIDs))]
		args := make([]any, 0, len(batch)*4)
		for _, lessonID := range batch {
			args = append(args, id, lessonID, models.ProgressStatusNotStarted, now)
		}
		query := fmt.Sprintf(`
			INSERT INTO progress (enrollment_id, lesson_id, status, last_accessed_at)
			VALUES %s
		`, placeholders("(?, ?, ?, ?)", len(batch)))
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("failed to create progress records: %w", err)
		}
	}

	counter, err := tx.ExecContext(ctx, `UPDATE courses SET students = students + 1 WHERE id = ?`, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to increment course students: %w", err)
	}
	rowsAffected, err := counter.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrCourseNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.EnrollResult{
		Enrollment: &models.Enrollment{
			ID:                   int(id),
			StudentID:            studentID,
			CourseID:             courseID,
			EnrolledAt:           now,
			Status:               models.EnrollmentStatusActive,
			CompletionPercentage: 0,
			LastAccessedAt:       now,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		TotalLessons: len(lessonIDs),
	}, nil
}

// GetByID retrieves an enrollment by its ID
func (r *enrollmentRepository) GetByID(ctx context.Context, id int) (*models.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + `
		FROM enrollments e
		WHERE e.id = ?
		LIMIT 1
	`

	var enrollment models.Enrollment
	err := scanEnrollment(r.db.QueryRowContext(ctx, query, id), &enrollment)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment by id: %w", err)
	}

	return &enrollment, nil
}

// ListByStudent retrieves a page of a student's enrollments, newest first
func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID, limit, offset int) ([]models.EnrollmentListItem, error) {
	query := `SELECT ` + enrollmentColumns + `, c.title
		FROM enrollments e
		INNER JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = ?
		ORDER BY e.enrolled_at DESC, e.id DESC
		LIMIT ? OFFSET ?
	`
	return r.list(ctx, query, studentID, limit, offset)
}

// CountByStudent counts a student's enrollments
func (r *enrollmentRepository) CountByStudent(ctx context.Context, studentID int) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM enrollments WHERE student_id = ?`, studentID)
}

// ListByCourse retrieves a page of a course's enrollments, newest first
func (r *enrollmentRepository) ListByCourse(ctx context.Context, courseID, limit, offset int) ([]models.EnrollmentListItem, error) {
	query := `SELECT ` + enrollmentColumns + `, c.title
		FROM enrollments e
		INNER JOIN courses c ON c.id = e.course_id
		WHERE e.course_id = ?
		ORDER BY e.enrolled_at DESC, e.id DESC
		LIMIT ? OFFSET ?
	`
	return r.list(ctx, query, courseID, limit, offset)
}

// CountByCourse counts a course's enrollments
func (r *enrollmentRepository) CountByCourse(ctx context.Context, courseID int) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM enrollments WHERE course_id = ?`, courseID)
}

// UpdateStatus sets the status of an enrollment
func (r *enrollmentRepository) UpdateStatus(ctx context.Context, id int, status models.EnrollmentStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE enrollments SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update enrollment status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEnrollmentNotFound
	}

	return nil
}

func (r *enrollmentRepository) list(ctx context.Context, query string, ownerID, limit, offset int) ([]models.EnrollmentListItem, error) {
	rows, err := r.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	items := []models.EnrollmentListItem{}
	for rows.Next() {
		var item models.EnrollmentListItem
		if err := scanEnrollment(rows, &item.Enrollment, &item.CourseTitle); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollments: %w", err)
	}

	return items, nil
}

func (r *enrollmentRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return total, nil
}
