package repositories

import (
	"database/sql"
	"fmt"

	"prolync/internal/models"
)

type ProblemRepository interface {
	List(difficulty, topic string) ([]*models.Problem, error)
	GetByID(id int) (*models.Problem, error)
	CreateSubmission(s *models.Submission) error
	ListSubmissions(userID, problemID int) ([]*models.Submission, error)
}

type problemRepository struct {
	DB *sql.DB
}

func NewProblemRepository(db *sql.DB) ProblemRepository {
	return &problemRepository{DB: db}
}

func (r *problemRepository) List(difficulty, topic string) ([]*models.Problem, error) {
	q := `SELECT id, title, slug, difficulty, topic, statement, template, test_cases, created_at FROM problems WHERE 1=1`
	var args []interface{}
	if difficulty != "" {
		args = append(args, difficulty)
		q += fmt.Sprintf(" AND difficulty = $%d", len(args))
	}
	if topic != "" {
		args = append(args, topic)
		q += fmt.Sprintf(" AND topic = $%d", len(args))
	}
	q += " ORDER BY id"

	rows, err := r.DB.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	defer rows.Close()

	var problems []*models.Problem
	for rows.Next() {
		var p models.Problem
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Difficulty, &p.Topic, &p.Statement, &p.Template, &p.TestCases, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan problem: %w", err)
		}
		problems = append(problems, &p)
	}
	return problems, rows.Err()
}

func (r *problemRepository) GetByID(id int) (*models.Problem, error) {
	const q = `SELECT id, title, slug, difficulty, topic, statement, template, test_cases, created_at FROM problems WHERE id = $1`
	var p models.Problem
	if err := r.DB.QueryRow(q, id).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Difficulty, &p.Topic, &p.Statement, &p.Template, &p.TestCases, &p.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get problem: %w", err)
	}
	return &p, nil
}

func (r *problemRepository) CreateSubmission(s *models.Submission) error {
	const q = `
		INSERT INTO submissions (user_id, problem_id, language, source_code, verdict, passed_cases, total_cases)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, submitted_at
	`
	if err := r.DB.QueryRow(q,
		s.UserID, s.ProblemID, s.Language, s.SourceCode, s.Verdict, s.PassedCases, s.TotalCases,
	).Scan(&s.ID, &s.SubmittedAt); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

func (r *problemRepository) ListSubmissions(userID, problemID int) ([]*models.Submission, error) {
	const q = `
		SELECT id, user_id, problem_id, language, source_code, verdict, passed_cases, total_cases, submitted_at
		FROM submissions
		WHERE user_id = $1 AND problem_id = $2
		ORDER BY submitted_at DESC
	`
	rows, err := r.DB.Query(q, userID, problemID)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProblemID, &s.Language, &s.SourceCode, &s.Verdict, &s.PassedCases, &s.TotalCases, &s.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
