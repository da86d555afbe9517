package repositories

import (
	"database/sql"
	"fmt"

	"prolync/internal/models"
)

type CertificateRepository interface {
	Create(c *models.Certificate) error
	GetByCode(code string) (*models.Certificate, error)
}

type certificateRepository struct {
	DB *sql.DB
}

func NewCertificateRepository(db *sql.DB) CertificateRepository {
	return &certificateRepository{DB: db}
}

func (r *certificateRepository) Create(c *models.Certificate) error {
	const q = `
		INSERT INTO certificates (code, user_id, user_name, course_id, course_title, file_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, issued_at
	`
	if err := r.DB.QueryRow(q,
		c.Code, c.UserID, c.UserName, c.CourseID, c.CourseTitle, c.FilePath,
	).Scan(&c.ID, &c.IssuedAt); err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}
	return nil
}

func (r *certificateRepository) GetByCode(code string) (*models.Certificate, error) {
	const q = `
		SELECT id, code, user_id, user_name, course_id, course_title, file_path, issued_at
		FROM certificates
		WHERE code = $1
	`
	var c models.Certificate
	if err := r.DB.QueryRow(q, code).Scan(
		&c.ID, &c.Code, &c.UserID, &c.UserName, &c.CourseID, &c.CourseTitle, &c.FilePath, &c.IssuedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get certificate: %w", err)
	}
	return &c, nil
}
