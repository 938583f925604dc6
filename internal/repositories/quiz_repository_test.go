package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/learnhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupQuizTestRepository creates a quiz repository with a mock database
func setupQuizTestRepository(t *testing.T) (*quizRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewQuizRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestQuizRepository_GetByID(t *testing.T) {
	columns := []string{"id", "course_id", "lesson_id", "title", "passing_score", "attempt_limit", "questions"}
	questions := `[{"question":"2+2?","options":["3","4"],"correctAnswer":1},{"question":"3*3?","options":["9","6"],"correctAnswer":0}]`

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).AddRow(9, 3, nil, "Warm up", 50, -1, questions)
				mock.ExpectQuery(`(?s)SELECT id, course_id, lesson_id, title, passing_score, attempt_limit, questions\s+FROM quizzes\s+WHERE id = \?`).
					WithArgs(9).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT .* FROM quizzes`).
					WithArgs(9).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: ErrQuizNotFound,
		},
		{
			name: "invalid questions json",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).AddRow(9, 3, nil, "Warm up", 50, -1, "{broken")
				mock.ExpectQuery(`(?s)SELECT .* FROM quizzes`).
					WithArgs(9).
					WillReturnRows(rows)
			},
			expectedError: errors.New("failed to decode quiz questions"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupQuizTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByID(context.Background(), 9)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, 3, result.CourseID)
				assert.Nil(t, result.LessonID)
				assert.Equal(t, models.UnlimitedAttempts, result.AttemptLimit)
				require.Len(t, result.Questions, 2)
				assert.Equal(t, 1, result.Questions[0].CorrectAnswer)
				assert.Equal(t, []string{"9", "6"}, result.Questions[1].Options)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuizRepository_CountAttempts(t *testing.T) {
	repo, mock, cleanup := setupQuizTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM quiz_submissions WHERE quiz_id = \? AND student_id = \?`).
		WithArgs(9, 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountAttempts(context.Background(), 9, 7)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_CreateSubmission(t *testing.T) {
	submittedAt := time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)
	newSubmission := func() *models.QuizSubmission {
		return &models.QuizSubmission{
			StudentID:    7,
			QuizID:       9,
			EnrollmentID: 5,
			Answers: []models.GradedAnswer{
				{QuestionIndex: 0, SelectedAnswer: 1, IsCorrect: true},
			},
			Score:            1,
			TotalScore:       2,
			Percentage:       50,
			IsPassed:         true,
			TimeTakenSeconds: 42,
			AttemptNumber:    3,
			SubmittedAt:      submittedAt,
		}
	}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`(?s)INSERT INTO quiz_submissions`).
					WithArgs(7, 9, 5, sqlmock.AnyArg(), 1, 2, 50, true, 42, 3, submittedAt).
					WillReturnResult(sqlmock.NewResult(14, 1))
			},
			expectedID: 14,
		},
		{
			name: "attempt number taken concurrently",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`(?s)INSERT INTO quiz_submissions`).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			expectedError: ErrQuizAttemptExists,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`(?s)INSERT INTO quiz_submissions`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupQuizTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			submission := newSubmission()
			err := repo.CreateSubmission(context.Background(), submission)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, submission.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuizRepository_ListSubmissions(t *testing.T) {
	repo, mock, cleanup := setupQuizTestRepository(t)
	defer cleanup()

	submittedAt := time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)
	columns := []string{"id", "student_id", "quiz_id", "enrollment_id", "answers", "score", "total_score",
		"percentage", "is_passed", "time_taken_seconds", "attempt_number", "submitted_at"}
	rows := sqlmock.NewRows(columns).
		AddRow(14, 7, 9, 5, `[{"questionIndex":0,"selectedAnswer":1,"isCorrect":true}]`, 1, 2, 50, true, 42, 2, submittedAt).
		AddRow(13, 7, 9, 5, `[{"questionIndex":0,"selectedAnswer":0,"isCorrect":false}]`, 0, 2, 0, false, 30, 1, submittedAt)
	mock.ExpectQuery(`(?s)SELECT .* FROM quiz_submissions\s+WHERE quiz_id = \?\s+ORDER BY submitted_at DESC`).
		WithArgs(9).
		WillReturnRows(rows)

	result, err := repo.ListSubmissions(context.Background(), 9)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 2, result[0].AttemptNumber)
	require.Len(t, result[0].Answers, 1)
	assert.True(t, result[0].Answers[0].IsCorrect)
	assert.False(t, result[1].IsPassed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
