package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/learnhub/backend/internal/apperrors"
	"github.com/learnhub/backend/internal/models"
)

// ErrLessonNotFound is returned when a lesson does not exist
var ErrLessonNotFound = apperrors.NotFound("lesson not found")

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetByID retrieves a lesson by its ID
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	query := `
		SELECT id, course_id, title, video_url, duration_minutes, lesson_order
		FROM lessons
		WHERE id = ?
		LIMIT 1
	`

	var lesson models.Lesson
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&lesson.VideoURL,
		&lesson.DurationMinutes,
		&lesson.Order,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	return &lesson, nil
}

// lessonIDsByCourse returns the ids of every lesson in a course using q,
// so callers can run it inside a transaction
func lessonIDsByCourse(ctx context.Context, q querier, courseID int) ([]int, error) {
	rows, err := q.QueryContext(ctx, `SELECT id FROM lessons WHERE course_id = ? ORDER BY lesson_order, id`, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lesson ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan lesson id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lesson ids: %w", err)
	}

	return ids, nil
}
