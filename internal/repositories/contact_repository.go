package repositories

import (
	"database/sql"
	"fmt"

	"prolync/internal/models"
)

type ContactRepository interface {
	Create(m *models.ContactMessage) error
}

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) Create(m *models.ContactMessage) error {
	const q = `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(q, m.Name, m.Email, m.Subject, m.Message).Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}
