package models

import "time"

// OTPCode is the single live code per email. A new request for the same
// email overwrites the previous row; the row is deleted on successful
// verification.
type OTPCode struct {
	Email     string    `json:"email"`
	Code      string    `json:"otp_code"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
