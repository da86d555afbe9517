package repositories

import (
	"database/sql"
	"fmt"

	"prolync/internal/models"
)

type CourseRepository interface {
	List(filter models.CourseFilter) ([]*models.Course, error)
	GetByID(id int) (*models.Course, error)
	Create(c *models.Course) error
	Update(c *models.Course) error
	Delete(id int) error
	GetCount() (int, error)
	Distribution() ([]*models.CourseDistribution, error)
}

type courseRepository struct {
	DB *sql.DB
}

func NewCourseRepository(db *sql.DB) CourseRepository {
	return &courseRepository{DB: db}
}

func (r *courseRepository) List(filter models.CourseFilter) ([]*models.Course, error) {
	q := `
		SELECT c.id, c.title, c.description, c.instructor, c.thumbnail, c.category, c.level, c.price, c.status, c.created_at,
			COUNT(DISTINCT e.id) AS enrolled,
			COUNT(DISTINCT CASE WHEN e.progress = 100 THEN e.id END) AS completed,
			COALESCE(AVG(cr.rating), 0) AS rating,
			(SELECT COUNT(*) FROM course_modules WHERE course_id = c.id) AS total_modules,
			(SELECT COALESCE(SUM(duration_seconds), 0) FROM course_modules WHERE course_id = c.id) AS total_duration
		FROM courses c
		LEFT JOIN enrollments e ON c.id = e.course_id
		LEFT JOIN course_ratings cr ON c.id = cr.course_id
		WHERE 1=1
	`
	var args []interface{}
	n := 0
	next := func() string { n++; return fmt.Sprintf("$%d", n) }

	if filter.Search != "" {
		p1, p2 := next(), next()
		q += " AND (c.title ILIKE " + p1 + " OR c.instructor ILIKE " + p2 + ")"
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Level != "" && filter.Level != "all" {
		q += " AND c.level = " + next()
		args = append(args, filter.Level)
	}
	if filter.Status != "" && filter.Status != "all" {
		q += " AND c.status = " + next()
		args = append(args, filter.Status)
	}
	q += " GROUP BY c.id ORDER BY c.created_at DESC"

	rows, err := r.DB.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &c.Instructor, &c.Thumbnail,
			&c.Category, &c.Level, &c.Price, &c.Status, &c.CreatedAt,
			&c.Enrolled, &c.Completed, &c.Rating, &c.TotalModules, &c.TotalDuration,
		); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, &c)
	}
	return courses, rows.Err()
}

func (r *courseRepository) GetByID(id int) (*models.Course, error) {
	const q = `
		SELECT c.id, c.title, c.description, c.instructor, c.thumbnail, c.category, c.level, c.price, c.status, c.created_at,
			COUNT(DISTINCT e.id) AS enrolled,
			COALESCE(AVG(cr.rating), 0) AS rating
		FROM courses c
		LEFT JOIN enrollments e ON c.id = e.course_id
		LEFT JOIN course_ratings cr ON c.id = cr.course_id
		WHERE c.id = $1
		GROUP BY c.id
	`
	var c models.Course
	if err := r.DB.QueryRow(q, id).Scan(
		&c.ID, &c.Title, &c.Description, &c.Instructor, &c.Thumbnail,
		&c.Category, &c.Level, &c.Price, &c.Status, &c.CreatedAt,
		&c.Enrolled, &c.Rating,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &c, nil
}

func (r *courseRepository) Create(c *models.Course) error {
	const q = `
		INSERT INTO courses (title, description, instructor, thumbnail, category, level, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(q,
		c.Title, c.Description, c.Instructor, c.Thumbnail, c.Category, c.Level, c.Price, c.Status,
	).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

func (r *courseRepository) Update(c *models.Course) error {
	const q = `
		UPDATE courses
		SET title = $1, description = $2, instructor = $3, thumbnail = $4,
			category = $5, level = $6, price = $7, status = $8
		WHERE id = $9
	`
	if _, err := r.DB.Exec(q,
		c.Title, c.Description, c.Instructor, c.Thumbnail, c.Category, c.Level, c.Price, c.Status, c.ID,
	); err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

func (r *courseRepository) Delete(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM courses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

func (r *courseRepository) GetCount() (int, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return count, nil
}

func (r *courseRepository) Distribution() ([]*models.CourseDistribution, error) {
	const q = `
		SELECT c.title, COUNT(e.id) AS students
		FROM courses c
		LEFT JOIN enrollments e ON c.id = e.course_id
		GROUP BY c.id, c.title
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("course distribution: %w", err)
	}
	defer rows.Close()

	var dist []*models.CourseDistribution
	for rows.Next() {
		var d models.CourseDistribution
		if err := rows.Scan(&d.Title, &d.Students); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		dist = append(dist, &d)
	}
	return dist, rows.Err()
}
