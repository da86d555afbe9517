package repositories

import (
	"database/sql"
	"fmt"

	"prolync/internal/models"
)

type AdminRepository interface {
	GetByEmail(email string) (*models.Admin, error)
	GetByUserID(userID int) (*models.Admin, error)
	UpdatePasswordByEmail(email, passwordHash string) (bool, error)
	UpdatePassword(userID int, passwordHash string) error
}

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{DB: db}
}

func (r *adminRepository) scan(row *sql.Row) (*models.Admin, error) {
	var a models.Admin
	if err := row.Scan(&a.UserID, &a.FullName, &a.Email, &a.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}
	return &a, nil
}

func (r *adminRepository) GetByEmail(email string) (*models.Admin, error) {
	const q = `SELECT user_id, full_name, email, password FROM admins WHERE email = $1`
	return r.scan(r.DB.QueryRow(q, email))
}

func (r *adminRepository) GetByUserID(userID int) (*models.Admin, error) {
	const q = `SELECT user_id, full_name, email, password FROM admins WHERE user_id = $1`
	return r.scan(r.DB.QueryRow(q, userID))
}

func (r *adminRepository) UpdatePasswordByEmail(email, passwordHash string) (bool, error) {
	res, err := r.DB.Exec(`UPDATE admins SET password = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		return false, fmt.Errorf("update admin password by email: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *adminRepository) UpdatePassword(userID int, passwordHash string) error {
	if _, err := r.DB.Exec(`UPDATE admins SET password = $1 WHERE user_id = $2`, passwordHash, userID); err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	return nil
}
