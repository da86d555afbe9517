package repositories

import (
	"database/sql"
	"fmt"

	"prolync/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id int) error
	List(limit, offset int) ([]*models.User, error)
	GetCount() (int, error)
	UpdateLastLogin(id int) error
	UpdatePasswordByEmail(email, passwordHash string) (bool, error)
	UpdatePassword(id int, passwordHash string) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (name, email, password, is_verified)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(q, user.Name, user.Email, user.PasswordHash, user.IsVerified).
		Scan(&user.ID, &user.CreatedAt); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsVerified,
		&u.ProfilePicture, &u.ResumePath, &u.LastLogin, &u.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	const q = `
		SELECT id, name, email, password, is_verified, profile_picture, resume_path, last_login, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.DB.QueryRow(q, id))
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
		SELECT id, name, email, password, is_verified, profile_picture, resume_path, last_login, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.DB.QueryRow(q, email))
}

func (r *userRepository) Update(user *models.User) error {
	const q = `
		UPDATE users
		SET name = $1, email = $2, profile_picture = $3, resume_path = $4
		WHERE id = $5
	`
	if _, err := r.DB.Exec(q, user.Name, user.Email, user.ProfilePicture, user.ResumePath, user.ID); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *userRepository) List(limit, offset int) ([]*models.User, error) {
	const q = `
		SELECT id, name, email, password, is_verified, profile_picture, resume_path, last_login, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsVerified,
			&u.ProfilePicture, &u.ResumePath, &u.LastLogin, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *userRepository) GetCount() (int, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (r *userRepository) UpdateLastLogin(id int) error {
	if _, err := r.DB.Exec(`UPDATE users SET last_login = NOW() WHERE id = $1`, id); err != nil {
		return fmt.Errorf("update last_login: %w", err)
	}
	return nil
}

// UpdatePasswordByEmail reports whether a row was touched so the caller can
// fall back to the admins table.
func (r *userRepository) UpdatePasswordByEmail(email, passwordHash string) (bool, error) {
	res, err := r.DB.Exec(`UPDATE users SET password = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		return false, fmt.Errorf("update password by email: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *userRepository) UpdatePassword(id int, passwordHash string) error {
	if _, err := r.DB.Exec(`UPDATE users SET password = $1 WHERE id = $2`, passwordHash, id); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
