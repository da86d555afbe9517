package models

import "time"

type Certificate struct {
	ID          int       `json:"id"`
	Code        string    `json:"code"`
	UserID      int       `json:"user_id"`
	UserName    string    `json:"user_name"`
	CourseID    int       `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	FilePath    string    `json:"file_path"`
	IssuedAt    time.Time `json:"issued_at"`
}

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
