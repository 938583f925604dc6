package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/learnhub/backend/internal/apperrors"
	"github.com/learnhub/backend/internal/models"
)

var (
	// ErrQuizNotFound is returned when a quiz does not exist
	ErrQuizNotFound = apperrors.NotFound("quiz not found")
	// ErrQuizAttemptExists is returned when the attempt number was taken by a concurrent submission
	ErrQuizAttemptExists = apperrors.Conflict("quiz attempt already recorded, retry the submission")
)

type quizRepository struct {
	db *sql.DB
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db *sql.DB) *quizRepository {
	return &quizRepository{
		db: db,
	}
}

// GetByID retrieves a quiz with its questions
func (r *quizRepository) GetByID(ctx context.Context, id int) (*models.Quiz, error) {
	query := `
		SELECT id, course_id, lesson_id, title, passing_score, attempt_limit, questions
		FROM quizzes
		WHERE id = ?
		LIMIT 1
	`

	var quiz models.Quiz
	var lessonID sql.NullInt64
	var questionsJSON []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&quiz.ID,
		&quiz.CourseID,
		&lessonID,
		&quiz.Title,
		&quiz.PassingScore,
		&quiz.AttemptLimit,
		&questionsJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}

	if err := json.Unmarshal(questionsJSON, &quiz.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode quiz questions: %w", err)
	}
	quiz.LessonID = nullIntPtr(lessonID)

	return &quiz, nil
}

// CountAttempts counts a student's submissions for a quiz
func (r *quizRepository) CountAttempts(ctx context.Context, quizID, studentID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM quiz_submissions WHERE quiz_id = ? AND student_id = ?`,
		quizID, studentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count quiz attempts: %w", err)
	}
	return count, nil
}

// CreateSubmission stores a scored quiz attempt
func (r *quizRepository) CreateSubmission(ctx context.Context, submission *models.QuizSubmission) error {
	answersJSON, err := json.Marshal(submission.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	query := `
		INSERT INTO quiz_submissions (
			student_id, quiz_id, enrollment_id, answers, score, total_score,
			percentage, is_passed, time_taken_seconds, attempt_number, submitted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		submission.StudentID,
		submission.QuizID,
		submission.EnrollmentID,
		answersJSON,
		submission.Score,
		submission.TotalScore,
		submission.Percentage,
		submission.IsPassed,
		submission.TimeTakenSeconds,
		submission.AttemptNumber,
		submission.SubmittedAt,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrQuizAttemptExists
		}
		return fmt.Errorf("failed to create quiz submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	submission.ID = int(id)
	return nil
}

// ListSubmissions retrieves every submission of a quiz, newest first
func (r *quizRepository) ListSubmissions(ctx context.Context, quizID int) ([]models.QuizSubmission, error) {
	query := `
		SELECT id, student_id, quiz_id, enrollment_id, answers, score, total_score,
			percentage, is_passed, time_taken_seconds, attempt_number, submitted_at
		FROM quiz_submissions
		WHERE quiz_id = ?
		ORDER BY submitted_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz submissions: %w", err)
	}
	defer rows.Close()

	submissions := []models.QuizSubmission{}
	for rows.Next() {
		var s models.QuizSubmission
		var answersJSON []byte
		if err := rows.Scan(
			&s.ID,
			&s.StudentID,
			&s.QuizID,
			&s.EnrollmentID,
			&answersJSON,
			&s.Score,
			&s.TotalScore,
			&s.Percentage,
			&s.IsPassed,
			&s.TimeTakenSeconds,
			&s.AttemptNumber,
			&s.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quiz submission: %w", err)
		}
		if err := json.Unmarshal(answersJSON, &s.Answers); err != nil {
			return nil, fmt.Errorf("failed to decode quiz answers: %w", err)
		}
		submissions = append(submissions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quiz submissions: %w", err)
	}

	return submissions, nil
}
