package models

import "time"

// UnlimitedAttempts marks a quiz without an attempt limit
const UnlimitedAttempts = -1

// QuizQuestion is one multiple-choice question
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   *string  `json:"explanation,omitempty"`
}

// Quiz represents a quiz attached to a course
type Quiz struct {
	ID           int            `json:"id"`
	CourseID     int            `json:"courseId"`
	LessonID     *int           `json:"lessonId"`
	Title        string         `json:"title"`
	PassingScore int            `json:"passingScore"`
	AttemptLimit int            `json:"attemptLimit"`
	Questions    []QuizQuestion `json:"questions"`
}

// QuizAnswer is one submitted answer
type QuizAnswer struct {
	QuestionIndex  int `json:"questionIndex" validate:"gte=0"`
	SelectedAnswer int `json:"selectedAnswer" validate:"gte=0"`
}

// GradedAnswer is a submitted answer with its correctness
type GradedAnswer struct {
	QuestionIndex  int  `json:"questionIndex"`
	SelectedAnswer int  `json:"selectedAnswer"`
	IsCorrect      bool `json:"isCorrect"`
}

// QuizScore is the result of scoring a set of answers
type QuizScore struct {
	Answers    []GradedAnswer
	Correct    int
	Total      int
	Percentage int
	Passed     bool
}

// QuizSubmission represents one attempt at a quiz
type QuizSubmission struct {
	ID               int            `json:"id"`
	StudentID        int            `json:"studentId"`
	QuizID           int            `json:"quizId"`
	EnrollmentID     int            `json:"enrollmentId"`
	Answers          []GradedAnswer `json:"answers"`
	Score            int            `json:"score"`
	TotalScore       int            `json:"totalScore"`
	Percentage       int            `json:"percentage"`
	IsPassed         bool           `json:"isPassed"`
	TimeTakenSeconds int            `json:"timeTakenSeconds"`
	AttemptNumber    int            `json:"attemptNumber"`
	SubmittedAt      time.Time      `json:"submittedAt"`
}

// SubmitQuizRequest represents a quiz attempt
type SubmitQuizRequest struct {
	QuizID           int          `json:"quizId" validate:"required,gt=0"`
	EnrollmentID     int          `json:"enrollmentId" validate:"required,gt=0"`
	Answers          []QuizAnswer `json:"answers" validate:"required,dive"`
	TimeTakenSeconds int          `json:"timeTaken" validate:"gte=0"`
}

// SubmitQuizResponse is returned after a quiz attempt is stored
type SubmitQuizResponse struct {
	Submission *QuizSubmission `json:"submission"`
	Score      int             `json:"score"`
	IsPassed   bool            `json:"isPassed"`
}
