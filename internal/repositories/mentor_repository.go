package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"prolync/internal/models"
)

type MentorRepository interface {
	List() ([]*models.Mentor, error)
	GetByID(id int) (*models.Mentor, error)
}

type mentorRepository struct {
	DB *sql.DB
}

func NewMentorRepository(db *sql.DB) MentorRepository {
	return &mentorRepository{DB: db}
}

// skills and availability are JSON columns
func decodeMentorJSON(m *models.Mentor, skills, availability []byte) error {
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &m.Skills); err != nil {
			return fmt.Errorf("decode mentor skills: %w", err)
		}
	}
	if len(availability) > 0 {
		if err := json.Unmarshal(availability, &m.Availability); err != nil {
			return fmt.Errorf("decode mentor availability: %w", err)
		}
	}
	return nil
}

func (r *mentorRepository) List() ([]*models.Mentor, error) {
	const q = `
		SELECT id, name, role, company, avatar, skills, bio, detailed_bio, availability, max_participants, created_at
		FROM mentors
		ORDER BY id
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}
	defer rows.Close()

	var mentors []*models.Mentor
	for rows.Next() {
		var m models.Mentor
		var skills, availability []byte
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Role, &m.Company, &m.Avatar,
			&skills, &m.Bio, &m.DetailedBio, &availability, &m.MaxParticipants, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan mentor: %w", err)
		}
		if err := decodeMentorJSON(&m, skills, availability); err != nil {
			return nil, err
		}
		mentors = append(mentors, &m)
	}
	return mentors, rows.Err()
}

func (r *mentorRepository) GetByID(id int) (*models.Mentor, error) {
	const q = `
		SELECT id, name, role, company, avatar, skills, bio, detailed_bio, availability, max_participants, created_at
		FROM mentors
		WHERE id = $1
	`
	var m models.Mentor
	var skills, availability []byte
	if err := r.DB.QueryRow(q, id).Scan(
		&m.ID, &m.Name, &m.Role, &m.Company, &m.Avatar,
		&skills, &m.Bio, &m.DetailedBio, &availability, &m.MaxParticipants, &m.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get mentor: %w", err)
	}
	if err := decodeMentorJSON(&m, skills, availability); err != nil {
		return nil, err
	}
	return &m, nil
}
