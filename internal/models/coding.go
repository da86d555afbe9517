package models

import "time"

type Problem struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Difficulty string    `json:"difficulty"`
	Topic      string    `json:"topic"`
	Statement  string    `json:"statement"`
	Template   string    `json:"template"`
	TestCases  string    `json:"test_cases"` // JSON blob, opaque to the backend
	CreatedAt  time.Time `json:"created_at"`
}

type Submission struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	ProblemID   int       `json:"problem_id"`
	Language    string    `json:"language"`
	SourceCode  string    `json:"source_code"`
	Verdict     string    `json:"verdict"`
	PassedCases int       `json:"passed_cases"`
	TotalCases  int       `json:"total_cases"`
	SubmittedAt time.Time `json:"submitted_at"`
}
