package services

import (
	"context"
	"fmt"
	"time"

	"github.com/learnhub/backend/internal/apperrors"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// QuizRepository defines methods for quiz data access
type QuizRepository interface {
	// GetByID retrieves a quiz with its questions
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the quiz.
	//
	// Returns the quiz, or a not found error if it does not exist.
	GetByID(ctx context.Context, id int) (*models.Quiz, error)
	// CountAttempts counts a student's submissions for a quiz
	//
	// "ctx" is the context for the request.
	// "quizID" is the ID of the quiz.
	// "studentID" is the ID of the student.
	CountAttempts(ctx context.Context, quizID, studentID int) (int, error)
	// CreateSubmission stores a scored attempt and sets its ID
	//
	// "ctx" is the context for the request.
	// "submission" is the attempt to store.
	//
	// Returns a conflict error if the attempt number is already taken.
	CreateSubmission(ctx context.Context, submission *models.QuizSubmission) error
	// ListSubmissions retrieves every submission of a quiz
	//
	// "ctx" is the context for the request.
	// "quizID" is the ID of the quiz.
	ListSubmissions(ctx context.Context, quizID int) ([]models.QuizSubmission, error)
}

// AssignmentRepository defines methods for assignment data access
type AssignmentRepository interface {
	// GetByID retrieves an assignment by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the assignment.
	//
	// Returns the assignment, or a not found error if it does not exist.
	GetByID(ctx context.Context, id int) (*models.Assignment, error)
	// CreateSubmission stores a new submission and sets its ID
	//
	// "ctx" is the context for the request.
	// "submission" is the submission to store.
	//
	// Returns a conflict error if the enrollment already submitted the assignment.
	CreateSubmission(ctx context.Context, submission *models.AssignmentSubmission) error
	// GetSubmissionByID retrieves a submission by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the submission.
	//
	// Returns the submission, or a not found error if it does not exist.
	GetSubmissionByID(ctx context.Context, id int) (*models.AssignmentSubmission, error)
	// Grade stores the score and feedback of a submission and marks it graded
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the submission.
	// "score" is the awarded score.
	// "feedback" is the optional instructor feedback.
	// "gradedBy" is the ID of the grading instructor.
	// "gradedAt" is the grading timestamp.
	Grade(ctx context.Context, id, score int, feedback *string, gradedBy int, gradedAt time.Time) error
	// ListSubmissions retrieves every submission of an assignment
	//
	// "ctx" is the context for the request.
	// "assignmentID" is the ID of the assignment.
	ListSubmissions(ctx context.Context, assignmentID int) ([]models.AssignmentSubmission, error)
}

var (
	errAttemptLimitExceeded  = apperrors.Conflict("attempt limit exceeded")
	errEnrollmentWrongCourse = apperrors.Validation("enrollment does not belong to this course")
	errEmptySubmission       = apperrors.Validation("textSubmission or fileUrl is required")
)

type assessmentService struct {
	courseRepo     CourseRepository
	enrollmentRepo EnrollmentRepository
	quizRepo       QuizRepository
	assignmentRepo AssignmentRepository
	logger         *zap.Logger
	now            func() time.Time
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	courseRepo CourseRepository,
	enrollmentRepo EnrollmentRepository,
	quizRepo QuizRepository,
	assignmentRepo AssignmentRepository,
	logger *zap.Logger,
) *assessmentService {
	return &assessmentService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		quizRepo:       quizRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
		now:            currentTime,
	}
}

// ScoreQuiz grades answers against the quiz questions.
// An answer is correct when its selected option equals the question's correct option;
// out of range question indexes are graded incorrect. Callers need not deduplicate
// answers first: each question counts at most once.
func ScoreQuiz(questions []models.QuizQuestion, answers []models.QuizAnswer, passingScore int) models.QuizScore {
	graded := make([]models.GradedAnswer, 0, len(answers))
	counted := make(map[int]bool, len(answers))
	correct := 0

	for _, answer := range answers {
		isCorrect := answer.QuestionIndex >= 0 &&
			answer.QuestionIndex < len(questions) &&
			questions[answer.QuestionIndex].CorrectAnswer == answer.SelectedAnswer
		if isCorrect && !counted[answer.QuestionIndex] {
			correct++
		}
		counted[answer.QuestionIndex] = true

		graded = append(graded, models.GradedAnswer{
			QuestionIndex:  answer.QuestionIndex,
			SelectedAnswer: answer.SelectedAnswer,
			IsCorrect:      isCorrect,
		})
	}

	percentage := models.Percentage(correct, len(questions))
	return models.QuizScore{
		Answers:    graded,
		Correct:    correct,
		Total:      len(questions),
		Percentage: percentage,
		Passed:     percentage >= passingScore,
	}
}

// SubmitQuiz scores and stores a quiz attempt for the principal
func (s *assessmentService) SubmitQuiz(ctx context.Context, p models.Principal, req *models.SubmitQuizRequest) (*models.SubmitQuizResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := checkDuplicateAnswers(req.Answers); err != nil {
		return nil, err
	}

	quiz, err := s.quizRepo.GetByID(ctx, req.QuizID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to get quiz", err, zap.Int("quizID", req.QuizID))
	}

	if err := s.checkStudentEnrollment(ctx, p, req.EnrollmentID, quiz.CourseID); err != nil {
		return nil, err
	}

	attempts, err := s.quizRepo.CountAttempts(ctx, quiz.ID, p.UserID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to count quiz attempts", err, zap.Int("quizID", quiz.ID))
	}
	if quiz.AttemptLimit > 0 && attempts >= quiz.AttemptLimit {
		return nil, errAttemptLimitExceeded
	}

	score := ScoreQuiz(quiz.Questions, req.Answers, quiz.PassingScore)
	submission := &models.QuizSubmission{
		StudentID:        p.UserID,
		QuizID:           quiz.ID,
		EnrollmentID:     req.EnrollmentID,
		Answers:          score.Answers,
		Score:            score.Correct,
		TotalScore:       score.Total,
		Percentage:       score.Percentage,
		IsPassed:         score.Passed,
		TimeTakenSeconds: req.TimeTakenSeconds,
		AttemptNumber:    attempts + 1,
		SubmittedAt:      s.now(),
	}

	if err := s.quizRepo.CreateSubmission(ctx, submission); err != nil {
		return nil, logUnexpected(s.logger, "failed to store quiz submission", err, zap.Int("quizID", quiz.ID))
	}

	return &models.SubmitQuizResponse{
		Submission: submission,
		Score:      submission.Percentage,
		IsPassed:   submission.IsPassed,
	}, nil
}

// ListQuizSubmissions retrieves every attempt at a quiz for the course instructor
func (s *assessmentService) ListQuizSubmissions(ctx context.Context, p models.Principal, quizID int) ([]models.QuizSubmission, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to get quiz", err, zap.Int("quizID", quizID))
	}

	if err := s.checkCourseOwner(ctx, p, quiz.CourseID); err != nil {
		return nil, err
	}

	submissions, err := s.quizRepo.ListSubmissions(ctx, quizID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to list quiz submissions", err, zap.Int("quizID", quizID))
	}

	return submissions, nil
}

// SubmitAssignment stores the principal's submission for an assignment.
// Lateness is fixed at submission time.
func (s *assessmentService) SubmitAssignment(ctx context.Context, p models.Principal, req *models.SubmitAssignmentRequest) (*models.AssignmentSubmission, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if isBlank(req.TextSubmission) && isBlank(req.FileURL) {
		return nil, errEmptySubmission
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to get assignment", err, zap.Int("assignmentID", req.AssignmentID))
	}

	if err := s.checkStudentEnrollment(ctx, p, req.EnrollmentID, assignment.CourseID); err != nil {
		return nil, err
	}

	now := s.now()
	submission := &models.AssignmentSubmission{
		AssignmentID:   assignment.ID,
		StudentID:      p.UserID,
		EnrollmentID:   req.EnrollmentID,
		TextSubmission: req.TextSubmission,
		FileURL:        req.FileURL,
		FileName:       req.FileName,
		SubmittedAt:    now,
		IsLate:         assignment.DueDate != nil && now.After(*assignment.DueDate),
		Status:         models.AssignmentSubmissionStatusSubmitted,
	}

	if err := s.assignmentRepo.CreateSubmission(ctx, submission); err != nil {
		return nil, logUnexpected(s.logger, "failed to store assignment submission", err, zap.Int("assignmentID", assignment.ID))
	}

	return submission, nil
}

// GradeAssignment grades a submission as the course instructor
func (s *assessmentService) GradeAssignment(ctx context.Context, p models.Principal, submissionID int, req *models.GradeAssignmentRequest) (*models.AssignmentSubmission, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	submission, err := s.assignmentRepo.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to get assignment submission", err, zap.Int("submissionID", submissionID))
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to get assignment", err, zap.Int("assignmentID", submission.AssignmentID))
	}

	if err := s.checkCourseOwner(ctx, p, assignment.CourseID); err != nil {
		return nil, err
	}

	score := *req.Score
	if score > assignment.MaxScore {
		return nil, apperrors.Validation(fmt.Sprintf("score must be between 0 and %d", assignment.MaxScore))
	}

	gradedAt := s.now()
	if err := s.assignmentRepo.Grade(ctx, submissionID, score, req.Feedback, p.UserID, gradedAt); err != nil {
		return nil, logUnexpected(s.logger, "failed to grade assignment submission", err, zap.Int("submissionID", submissionID))
	}

	gradedBy := p.UserID
	submission.Score = &score
	submission.Feedback = req.Feedback
	submission.GradedBy = &gradedBy
	submission.GradedAt = &gradedAt
	submission.Status = models.AssignmentSubmissionStatusGraded

	s.logger.Info("assignment graded",
		zap.Int("submissionID", submissionID),
		zap.Int("gradedBy", gradedBy),
		zap.Int("score", score),
	)

	return submission, nil
}

// ListAssignmentSubmissions retrieves every submission of an assignment for the course instructor
func (s *assessmentService) ListAssignmentSubmissions(ctx context.Context, p models.Principal, assignmentID int) ([]models.AssignmentSubmission, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to get assignment", err, zap.Int("assignmentID", assignmentID))
	}

	if err := s.checkCourseOwner(ctx, p, assignment.CourseID); err != nil {
		return nil, err
	}

	submissions, err := s.assignmentRepo.ListSubmissions(ctx, assignmentID)
	if err != nil {
		return nil, logUnexpected(s.logger, "failed to list assignment submissions", err, zap.Int("assignmentID", assignmentID))
	}

	return submissions, nil
}

// checkStudentEnrollment verifies the enrollment belongs to the principal and to the course
func (s *assessmentService) checkStudentEnrollment(ctx context.Context, p models.Principal, enrollmentID, courseID int) error {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return logUnexpected(s.logger, "failed to get enrollment", err, zap.Int("enrollmentID", enrollmentID))
	}
	if err := authorizeEnrollmentOwner(p, enrollment); err != nil {
		return err
	}
	if enrollment.CourseID != courseID {
		return errEnrollmentWrongCourse
	}
	return nil
}

func (s *assessmentService) checkCourseOwner(ctx context.Context, p models.Principal, courseID int) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return logUnexpected(s.logger, "failed to get course", err, zap.Int("courseID", courseID))
	}
	return authorizeCourseOwner(p, course)
}

func checkDuplicateAnswers(answers []models.QuizAnswer) error {
	seen := make(map[int]bool, len(answers))
	for _, answer := range answers {
		if seen[answer.QuestionIndex] {
			return apperrors.Validation(fmt.Sprintf("duplicate answer for question %d", answer.QuestionIndex))
		}
		seen[answer.QuestionIndex] = true
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
