package models

import "time"

type User struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	IsVerified     bool       `json:"is_verified"`
	ProfilePicture *string    `json:"profile_picture"`
	ResumePath     *string    `json:"resume_path"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Admin rows live in a separate table; the credential is a bcrypt hash,
// same as regular users.
type Admin struct {
	UserID       int    `json:"id"`
	FullName     string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
}

// AuthenticatedUser is the public shape returned alongside a freshly minted
// session token.
type AuthenticatedUser struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	ProfilePicture *string `json:"profile_picture"`
	ResumePath     *string `json:"resume_path"`
}
