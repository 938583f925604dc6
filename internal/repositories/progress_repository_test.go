package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/learnhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var progressRowColumns = []string{
	"id", "enrollment_id", "lesson_id", "status", "watch_time_seconds", "completed_at", "last_accessed_at",
	"title", "duration_minutes", "lesson_order",
}

// setupProgressTestRepository creates a progress repository with a mock database
func setupProgressTestRepository(t *testing.T) (*progressRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewProgressRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewProgressRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewProgressRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestProgressRepository_GetByEnrollmentAndLesson(t *testing.T) {
	accessed := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(progressRowColumns).
					AddRow(31, 5, 21, "completed", 600, accessed, accessed, "Linear equations", 15, 1)
				mock.ExpectQuery(`(?s)SELECT .* FROM progress p\s+INNER JOIN lessons l ON l.id = p.lesson_id\s+WHERE p.enrollment_id = \? AND p.lesson_id = \?`).
					WithArgs(5, 21).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT .* FROM progress p`).
					WithArgs(5, 21).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: ErrProgressNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT .* FROM progress p`).
					WithArgs(5, 21).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProgressTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByEnrollmentAndLesson(context.Background(), 5, 21)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, 31, result.ID)
				assert.Equal(t, models.ProgressStatusCompleted, result.Status)
				assert.Equal(t, 600, result.WatchTimeSeconds)
				require.NotNil(t, result.CompletedAt)
				assert.Equal(t, accessed, *result.CompletedAt)
				require.NotNil(t, result.Lesson)
				assert.Equal(t, "Linear equations", result.Lesson.Title)
				assert.Equal(t, 15, result.Lesson.DurationMinutes)
				assert.Equal(t, 1, result.Lesson.Order)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_ListByEnrollment(t *testing.T) {
	accessed := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedLen   int
	}{
		{
			name: "success ordered by lesson",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(progressRowColumns).
					AddRow(31, 5, 21, "completed", 600, accessed, accessed, "Linear equations", 15, 1).
					AddRow(32, 5, 22, "not-started", 0, nil, accessed, "Quadratics", 20, 2).
					AddRow(33, 5, 23, "not-started", 0, nil, accessed, "Polynomials", 25, 3)
				mock.ExpectQuery(`(?s)SELECT .* FROM progress p.*WHERE p.enrollment_id = \?\s+ORDER BY l.lesson_order, l.id`).
					WithArgs(5).
					WillReturnRows(rows)
			},
			expectedLen: 3,
		},
		{
			name: "no progress rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT .* FROM progress p`).
					WithArgs(5).
					WillReturnRows(sqlmock.NewRows(progressRowColumns))
			},
			expectedLen: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT .* FROM progress p`).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "row error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(progressRowColumns).
					AddRow(31, 5, 21, "completed", 600, accessed, accessed, "Linear equations", 15, 1).
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(`(?s)SELECT .* FROM progress p`).
					WithArgs(5).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProgressTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.ListByEnrollment(context.Background(), 5)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result, tt.expectedLen)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_Record(t *testing.T) {
	now := time.Date(2024, 5, 3, 18, 30, 0, 0, time.UTC)
	earlier := now.Add(-24 * time.Hour)
	completed := models.ProgressStatusCompleted
	inProgress := models.ProgressStatusInProgress
	watch := 900

	lockEnrollment := func(mock sqlmock.Sqlmock, current int) {
		mock.ExpectQuery(`SELECT completion_percentage FROM enrollments WHERE id = \? FOR UPDATE`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"completion_percentage"}).AddRow(current))
	}
	selectProgress := func(mock sqlmock.Sqlmock, status string, watchTime int, completedAt any) {
		mock.ExpectQuery(`(?s)SELECT id, status, watch_time_seconds, completed_at\s+FROM progress\s+WHERE enrollment_id = \? AND lesson_id = \?\s+FOR UPDATE`).
			WithArgs(5, 22).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "watch_time_seconds", "completed_at"}).
				AddRow(32, status, watchTime, completedAt))
	}
	countRows := func(mock sqlmock.Sqlmock, completedCount, total int) {
		mock.ExpectQuery(`(?s)SELECT COALESCE\(SUM\(status = 'completed'\), 0\), COUNT\(\*\)`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"completed", "total"}).AddRow(completedCount, total))
	}

	tests := []struct {
		name               string
		watchTime          *int
		status             *models.ProgressStatus
		setupMock          func(sqlmock.Sqlmock)
		expectedError      error
		expectedPercentage int
		expectedStatus     models.ProgressStatus
		expectedCompleted  *time.Time
	}{
		{
			name:   "completing second of three lessons",
			status: &completed,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				lockEnrollment(mock, 33)
				selectProgress(mock, "in-progress", 300, nil)
				mock.ExpectExec(`(?s)UPDATE progress\s+SET status = \?, watch_time_seconds = \?, completed_at = \?, last_accessed_at = \?\s+WHERE id = \?`).
					WithArgs("completed", 300, now, now, 32).
					WillReturnResult(sqlmock.NewResult(0, 1))
				countRows(mock, 2, 3)
				mock.ExpectExec(`(?s)UPDATE enrollments\s+SET completion_percentage = \?, last_accessed_at = \?, last_accessed_lesson_id = \?\s+WHERE id = \?`).
					WithArgs(67, now, 22, 5).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedPercentage: 67,
			expectedStatus:     models.ProgressStatusCompleted,
			expectedCompleted:  &now,
		},
		{
			name:      "leaving completed keeps completedAt and lowers percentage",
			watchTime: &watch,
			status:    &inProgress,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				lockEnrollment(mock, 100)
				selectProgress(mock, "completed", 600, earlier)
				mock.ExpectExec(`(?s)UPDATE progress`).
					WithArgs("in-progress", 900, earlier, now, 32).
					WillReturnResult(sqlmock.NewResult(0, 1))
				countRows(mock, 2, 3)
				mock.ExpectExec(`(?s)UPDATE enrollments`).
					WithArgs(67, now, 22, 5).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedPercentage: 67,
			expectedStatus:     models.ProgressStatusInProgress,
			expectedCompleted:  &earlier,
		},
		{
			name: "touch only recomputes the same value",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				lockEnrollment(mock, 33)
				selectProgress(mock, "not-started", 0, nil)
				mock.ExpectExec(`(?s)UPDATE progress`).
					WithArgs("not-started", 0, nil, now, 32).
					WillReturnResult(sqlmock.NewResult(0, 1))
				countRows(mock, 1, 3)
				mock.ExpectExec(`(?s)UPDATE enrollments`).
					WithArgs(33, now, 22, 5).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedPercentage: 33,
			expectedStatus:     models.ProgressStatusNotStarted,
		},
		{
			name:   "enrollment not found",
			status: &completed,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT completion_percentage FROM enrollments`).
					WithArgs(5).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedError: ErrEnrollmentNotFound,
		},
		{
			name:   "progress not found",
			status: &completed,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				lockEnrollment(mock, 0)
				mock.ExpectQuery(`(?s)SELECT id, status, watch_time_seconds, completed_at`).
					WithArgs(5, 22).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedError: ErrProgressNotFound,
		},
		{
			name:   "enrollment update fails rolls back",
			status: &completed,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				lockEnrollment(mock, 33)
				selectProgress(mock, "in-progress", 300, nil)
				mock.ExpectExec(`(?s)UPDATE progress`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				countRows(mock, 2, 3)
				mock.ExpectExec(`(?s)UPDATE enrollments`).
					WillReturnError(errors.New("update error"))
				mock.ExpectRollback()
			},
			expectedError: errors.New("update error"),
		},
		{
			name:   "transaction begin error",
			status: &completed,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			expectedError: errors.New("begin error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProgressTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.Record(context.Background(), 5, 22, tt.watchTime, tt.status, now)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedPercentage, result.CompletionPercentage)
				assert.Equal(t, tt.expectedStatus, result.Progress.Status)
				assert.Equal(t, now, result.Progress.LastAccessedAt)
				if tt.expectedCompleted == nil {
					assert.Nil(t, result.Progress.CompletedAt)
				} else {
					require.NotNil(t, result.Progress.CompletedAt)
					assert.Equal(t, *tt.expectedCompleted, *result.Progress.CompletedAt)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_CourseSummary(t *testing.T) {
	enrolledAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	columns := []string{"id", "student_id", "completion_percentage", "enrolled_at", "completed", "total"}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expected      []models.EnrollmentProgressSummary
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, 7, 100, enrolledAt, 3, 3).
					AddRow(2, 8, 33, enrolledAt, 1, 3)
				mock.ExpectQuery(`(?s)SELECT e.id, e.student_id, e.completion_percentage, e.enrolled_at.*FROM enrollments e\s+LEFT JOIN progress p ON p.enrollment_id = e.id\s+WHERE e.course_id = \?\s+GROUP BY`).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expected: []models.EnrollmentProgressSummary{
				{EnrollmentID: 1, StudentID: 7, CompletionPercentage: 100, EnrolledAt: enrolledAt, CompletedLessons: 3, TotalLessons: 3},
				{EnrollmentID: 2, StudentID: 8, CompletionPercentage: 33, EnrolledAt: enrolledAt, CompletedLessons: 1, TotalLessons: 3},
			},
		},
		{
			name: "no enrollments",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT e.id.*FROM enrollments e`).
					WithArgs(3).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expected: []models.EnrollmentProgressSummary{},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT e.id.*FROM enrollments e`).
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProgressTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.CourseSummary(context.Background(), 3)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
