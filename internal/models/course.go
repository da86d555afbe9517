package models

import "time"

type Course struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor"`
	Thumbnail   *string   `json:"thumbnail"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	// set for the requesting user when the listing carries a valid token
	IsEnrolled bool `json:"is_enrolled"`

	// aggregates filled by the listing query
	Enrolled      int     `json:"enrolled"`
	Completed     int     `json:"completed"`
	Rating        float64 `json:"rating"`
	TotalModules  int     `json:"total_modules"`
	TotalDuration int     `json:"total_duration"`
}

type CourseFilter struct {
	Search string
	Level  string
	Status string
}

type Enrollment struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	CourseID   int       `json:"course_id"`
	Progress   int       `json:"progress"`
	Completed  bool      `json:"completed"`
	EnrolledAt time.Time `json:"enrolled_at"`

	CourseTitle string `json:"course_title,omitempty"`
}
