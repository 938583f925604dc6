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

// ErrProgressNotFound is returned when no progress row exists for an enrollment and lesson
var ErrProgressNotFound = apperrors.NotFound("progress record not found")

const progressWithLessonColumns = `
	p.id, p.enrollment_id, p.lesson_id, p.status, p.watch_time_seconds, p.completed_at, p.last_accessed_at,
	l.title, l.duration_minutes, l.lesson_order`

func scanProgressWithLesson(row rowScanner) (models.Progress, error) {
	var progress models.Progress
	var completedAt sql.NullTime
	lesson := &models.LessonSummary{}

	err := row.Scan(
		&progress.ID,
		&progress.EnrollmentID,
		&progress.LessonID,
		&progress.Status,
		&progress.WatchTimeSeconds,
		&completedAt,
		&progress.LastAccessedAt,
		&lesson.Title,
		&lesson.DurationMinutes,
		&lesson.Order,
	)
	if err != nil {
		return progress, err
	}

	progress.CompletedAt = nullTimePtr(completedAt)
	progress.Lesson = lesson
	return progress, nil
}

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// GetByEnrollmentAndLesson retrieves the progress of one lesson within an enrollment
func (r *progressRepository) GetByEnrollmentAndLesson(ctx context.Context, enrollmentID, lessonID int) (*models.Progress, error) {
	query := `SELECT ` + progressWithLessonColumns + `
		FROM progress p
		INNER JOIN lessons l ON l.id = p.lesson_id
		WHERE p.enrollment_id = ? AND p.lesson_id = ?
		LIMIT 1
	`

	progress, err := scanProgressWithLesson(r.db.QueryRowContext(ctx, query, enrollmentID, lessonID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProgressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	return &progress, nil
}

// ListByEnrollment retrieves every progress row of an enrollment in lesson order
func (r *progressRepository) ListByEnrollment(ctx context.Context, enrollmentID int) ([]models.Progress, error) {
	query := `SELECT ` + progressWithLessonColumns + `
		FROM progress p
		INNER JOIN lessons l ON l.id = p.lesson_id
		WHERE p.enrollment_id = ?
		ORDER BY l.lesson_order, l.id
	`

	rows, err := r.db.QueryContext(ctx, query, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	progress := []models.Progress{}
	for rows.Next() {
		p, err := scanProgressWithLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		progress = append(progress, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress: %w", err)
	}

	return progress, nil
}

// Record applies a progress update and recomputes the enrollment completion percentage.
// The enrollment row is locked for the duration of the transaction, so concurrent updates
// within one enrollment are serialized.
func (r *progressRepository) Record(ctx context.Context, enrollmentID, lessonID int, watchTimeSeconds *int, status *models.ProgressStatus, now time.Time) (*models.RecordProgressResponse, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentPercentage int
	err = tx.QueryRowContext(ctx,
		`SELECT completion_percentage FROM enrollments WHERE id = ? FOR UPDATE`,
		enrollmentID,
	).Scan(&currentPercentage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock enrollment: %w", err)
	}

	progress := models.Progress{EnrollmentID: enrollmentID, LessonID: lessonID}
	var completedAt sql.NullTime
	err = tx.QueryRowContext(ctx, `
		SELECT id, status, watch_time_seconds, completed_at
		FROM progress
		WHERE enrollment_id = ? AND lesson_id = ?
		FOR UPDATE
	`, enrollmentID, lessonID).Scan(
		&progress.ID,
		&progress.Status,
		&progress.WatchTimeSeconds,
		&completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProgressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	progress.CompletedAt = nullTimePtr(completedAt)

	progress.Apply(watchTimeSeconds, status, now)

	if _, err := tx.ExecContext(ctx, `
		UPDATE progress
		SET status = ?, watch_time_seconds = ?, completed_at = ?, last_accessed_at = ?
		WHERE id = ?
	`, progress.Status, progress.WatchTimeSeconds, progress.CompletedAt, progress.LastAccessedAt, progress.ID); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	counts, err := countProgress(ctx, tx, enrollmentID)
	if err != nil {
		return nil, err
	}
	percentage := models.CompletionPercentage(counts, currentPercentage)

	if _, err := tx.ExecContext(ctx, `
		UPDATE enrollments
		SET completion_percentage = ?, last_accessed_at = ?, last_accessed_lesson_id = ?
		WHERE id = ?
	`, percentage, now, lessonID, enrollmentID); err != nil {
		return nil, fmt.Errorf("failed to update enrollment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.RecordProgressResponse{
		Progress:             &progress,
		CompletionPercentage: percentage,
	}, nil
}

// CourseSummary retrieves per-enrollment progress counts for every enrollment of a course
func (r *progressRepository) CourseSummary(ctx context.Context, courseID int) ([]models.EnrollmentProgressSummary, error) {
	query := `
		SELECT e.id, e.student_id, e.completion_percentage, e.enrolled_at,
			COALESCE(SUM(p.status = 'completed'), 0), COUNT(p.id)
		FROM enrollments e
		LEFT JOIN progress p ON p.enrollment_id = e.id
		WHERE e.course_id = ?
		GROUP BY e.id, e.student_id, e.completion_percentage, e.enrolled_at
		ORDER BY e.enrolled_at, e.id
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query course progress: %w", err)
	}
	defer rows.Close()

	summaries := []models.EnrollmentProgressSummary{}
	for rows.Next() {
		var s models.EnrollmentProgressSummary
		if err := rows.Scan(
			&s.EnrollmentID,
			&s.StudentID,
			&s.CompletionPercentage,
			&s.EnrolledAt,
			&s.CompletedLessons,
			&s.TotalLessons,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course progress: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course progress: %w", err)
	}

	return summaries, nil
}

func countProgress(ctx context.Context, q querier, enrollmentID int) (models.ProgressCounts, error) {
	var counts models.ProgressCounts
	err := q.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(status = 'completed'), 0), COUNT(*)
		FROM progress
		WHERE enrollment_id = ?
	`, enrollmentID).Scan(&counts.Completed, &counts.Total)
	if err != nil {
		return counts, fmt.Errorf("failed to count progress: %w", err)
	}
	return counts, nil
}
