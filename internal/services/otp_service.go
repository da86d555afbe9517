package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"prolync/internal/repositories"
)

var (
	ErrAlreadyRegistered = errors.New("email already registered")
	ErrOTPThrottled      = errors.New("otp resend throttled")
	ErrOTPNotFound       = errors.New("otp not found")
	ErrOTPExpired        = errors.New("otp expired")
	ErrOTPMismatch       = errors.New("otp mismatch")
)

const (
	signupOTPTTL   = 5 * time.Minute
	loginOTPTTL    = 5 * time.Minute
	resetOTPTTL    = 10 * time.Minute
	resendCooldown = 60 * time.Second
)

type OTPService interface {
	RequestSignupOTP(email string) error
	RequestLoginOTP(email string) error
	RequestResetOTP(email string) error
	Verify(email, code string) error
	VerifyExact(email, code string) error
	Consume(email string) error
}

type otpService struct {
	repo     repositories.OTPRepository
	userRepo repositories.UserRepository
	emails   EmailService

	now func() time.Time
}

func NewOTPService(repo repositories.OTPRepository, userRepo repositories.UserRepository, emails EmailService) OTPService {
	return &otpService{
		repo:     repo,
		userRepo: userRepo,
		emails:   emails,
		now:      time.Now,
	}
}

func generateCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// issue stores the code first and then attempts delivery. A failed send
// leaves the stored row in place; the caller sees the error, the row stays
// until superseded or expired.
func (s *otpService) issue(email string, ttl time.Duration) error {
	code := generateCode()
	expiresAt := s.now().Add(ttl)

	if err := s.repo.Upsert(email, code, expiresAt); err != nil {
		return err
	}
	if err := s.emails.SendOTPEmail(email, code); err != nil {
		log.Printf("[otp][send] delivery failed for %s: %v (stored code left in place)", email, err)
		return fmt.Errorf("send otp email: %w", err)
	}
	log.Printf("[otp][send] ok email=%s ttl=%s", email, ttl)
	return nil
}

// RequestSignupOTP is the only path with the 60-second cooldown. The check
// reads created_at without any lock; two concurrent requests inside the same
// window can both pass it.
func (s *otpService) RequestSignupOTP(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user != nil {
		return ErrAlreadyRegistered
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && s.now().Sub(existing.CreatedAt) < resendCooldown {
		return ErrOTPThrottled
	}

	return s.issue(email, signupOTPTTL)
}

func (s *otpService) RequestLoginOTP(email string) error {
	return s.issue(email, loginOTPTTL)
}

func (s *otpService) RequestResetOTP(email string) error {
	return s.issue(email, resetOTPTTL)
}

// Verify checks the stored code without consuming it. The compare is a
// plain string equality.
func (s *otpService) Verify(email, code string) error {
	rec, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrOTPNotFound
	}
	if s.now().After(rec.ExpiresAt) {
		return ErrOTPExpired
	}
	if rec.Code != code {
		return ErrOTPMismatch
	}
	return nil
}

// VerifyExact matches email+code+unexpired in a single query (the reset
// path); not-found and expired are indistinguishable here.
func (s *otpService) VerifyExact(email, code string) error {
	rec, err := s.repo.GetValid(email, code, s.now())
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrOTPMismatch
	}
	return nil
}

// Consume deletes the row; a code verifies successfully at most once.
func (s *otpService) Consume(email string) error {
	return s.repo.Delete(email)
}
