package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"prolync/internal/models"
)

type OTPRepository interface {
	Upsert(email, code string, expiresAt time.Time) error
	GetByEmail(email string) (*models.OTPCode, error)
	GetValid(email, code string, now time.Time) (*models.OTPCode, error)
	Delete(email string) error
}

type otpRepository struct {
	DB *sql.DB
}

func NewOTPRepository(db *sql.DB) OTPRepository {
	return &otpRepository{DB: db}
}

// Upsert — at most one live code per email; a new request overwrites the
// previous row.
func (r *otpRepository) Upsert(email, code string, expiresAt time.Time) error {
	const q = `
		INSERT INTO otp_codes (email, otp_code, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (email) DO UPDATE
		SET otp_code = EXCLUDED.otp_code, expires_at = EXCLUDED.expires_at, created_at = NOW()
	`
	if _, err := r.DB.Exec(q, email, code, expiresAt); err != nil {
		return fmt.Errorf("upsert otp: %w", err)
	}
	return nil
}

func (r *otpRepository) GetByEmail(email string) (*models.OTPCode, error) {
	const q = `SELECT email, otp_code, expires_at, created_at FROM otp_codes WHERE email = $1`
	var o models.OTPCode
	if err := r.DB.QueryRow(q, email).Scan(&o.Email, &o.Code, &o.ExpiresAt, &o.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get otp: %w", err)
	}
	return &o, nil
}

// GetValid matches email+code with an unexpired row in a single query (the
// reset-password path).
func (r *otpRepository) GetValid(email, code string, now time.Time) (*models.OTPCode, error) {
	const q = `
		SELECT email, otp_code, expires_at, created_at
		FROM otp_codes
		WHERE email = $1 AND otp_code = $2 AND expires_at > $3
	`
	var o models.OTPCode
	if err := r.DB.QueryRow(q, email, code, now).Scan(&o.Email, &o.Code, &o.ExpiresAt, &o.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get valid otp: %w", err)
	}
	return &o, nil
}

func (r *otpRepository) Delete(email string) error {
	if _, err := r.DB.Exec(`DELETE FROM otp_codes WHERE email = $1`, email); err != nil {
		return fmt.Errorf("delete otp: %w", err)
	}
	return nil
}
