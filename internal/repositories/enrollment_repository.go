package repositories

import (
	"database/sql"
	"fmt"

	"prolync/internal/models"
)

type EnrollmentRepository interface {
	Enroll(userID, courseID int) error
	ListByUser(userID int) ([]*models.Enrollment, error)
	CourseIDs(userID int) ([]int, error)
	GetCount() (int, error)
	GetCompletedCount() (int, error)
	StatusCounts(userID int) (completed, active int, err error)
}

type enrollmentRepository struct {
	DB *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) EnrollmentRepository {
	return &enrollmentRepository{DB: db}
}

// Enroll is idempotent: enrolling twice keeps the original row.
func (r *enrollmentRepository) Enroll(userID, courseID int) error {
	const q = `
		INSERT INTO enrollments (user_id, course_id, progress, completed)
		VALUES ($1, $2, 0, FALSE)
		ON CONFLICT (user_id, course_id) DO NOTHING
	`
	if _, err := r.DB.Exec(q, userID, courseID); err != nil {
		return fmt.Errorf("enroll: %w", err)
	}
	return nil
}

func (r *enrollmentRepository) ListByUser(userID int) ([]*models.Enrollment, error) {
	const q = `
		SELECT e.id, e.user_id, e.course_id, e.progress, e.completed, e.enrolled_at, c.title
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = $1
		ORDER BY e.enrolled_at DESC
	`
	rows, err := r.DB.Query(q, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var out []*models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(&e.ID, &e.UserID, &e.CourseID, &e.Progress, &e.Completed, &e.EnrolledAt, &e.CourseTitle); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// CourseIDs lists the IDs of the courses the user is enrolled in.
func (r *enrollmentRepository) CourseIDs(userID int) ([]int, error) {
	rows, err := r.DB.Query(`SELECT course_id FROM enrollments WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrolled course ids: %w", err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan course id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *enrollmentRepository) GetCount() (int, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM enrollments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return count, nil
}

func (r *enrollmentRepository) GetCompletedCount() (int, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM enrollments WHERE completed = TRUE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count completions: %w", err)
	}
	return count, nil
}

func (r *enrollmentRepository) StatusCounts(userID int) (completed, active int, err error) {
	const q = `
		SELECT
			COUNT(CASE WHEN completed THEN 1 END),
			COUNT(CASE WHEN NOT completed AND progress > 0 THEN 1 END)
		FROM enrollments
		WHERE user_id = $1
	`
	if err := r.DB.QueryRow(q, userID).Scan(&completed, &active); err != nil {
		return 0, 0, fmt.Errorf("enrollment status counts: %w", err)
	}
	return completed, active, nil
}
