package models

import "time"

// Course represents a course in the catalog
type Course struct {
	ID           int       `json:"id"`
	InstructorID int       `json:"instructorId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Level        string    `json:"level"`
	Students     int       `json:"students"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Lesson represents a lesson in a course
type Lesson struct {
	ID              int    `json:"id"`
	CourseID        int    `json:"courseId"`
	Title           string `json:"title"`
	VideoURL        string `json:"videoUrl"`
	DurationMinutes int    `json:"durationMinutes"`
	Order           int    `json:"order"`
}
