package services

import (
	"errors"
	"log"
	"strings"

	"prolync/internal/authz"
	"prolync/internal/models"
	"prolync/internal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// LoginResult is either a minted session (students, and admins after the
// OTP round-trip) or an OTP_SENT signal for the admin branch.
type LoginResult struct {
	OTPSent bool
	Token   string
	User    *models.AuthenticatedUser
}

type UserService interface {
	RequestSignupOTP(email string) error
	Register(req models.RegisterRequest, ip string) (string, *models.AuthenticatedUser, error)
	Login(email, password string) (*LoginResult, error)
	VerifyAdminOTP(email, code string) (string, *models.AuthenticatedUser, error)
	ForgotPassword(email string) error
	ResetPassword(email, code, newPassword string) error
	ChangePassword(userID int, role, currentPassword, newPassword string) error
	Me(userID int, role string) (*models.AuthenticatedUser, error)

	ListUsers(limit, offset int) ([]*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id int) error
	AdminResetUserPassword(userID int, newPassword string) error
}

type userService struct {
	users      repositories.UserRepository
	admins     repositories.AdminRepository
	otp        OTPService
	auth       AuthService
	activity   ActivityService
	emails     EmailService
	notifier   Notifier
	adminEmail string
}

func NewUserService(
	users repositories.UserRepository,
	admins repositories.AdminRepository,
	otp OTPService,
	auth AuthService,
	activity ActivityService,
	emails EmailService,
	notifier Notifier,
	adminEmail string,
) UserService {
	return &userService{
		users:      users,
		admins:     admins,
		otp:        otp,
		auth:       auth,
		activity:   activity,
		emails:     emails,
		notifier:   notifier,
		adminEmail: adminEmail,
	}
}

// roleFor mirrors the signup-time derivation: the one configured admin
// address gets ADMIN, everything else STUDENT. Login derives the role from
// the admins table instead.
func (s *userService) roleFor(email string) string {
	if s.adminEmail != "" && email == s.adminEmail {
		return authz.RoleAdmin
	}
	return authz.RoleStudent
}

func (s *userService) RequestSignupOTP(email string) error {
	return s.otp.RequestSignupOTP(strings.TrimSpace(email))
}

// Register completes signup: verify OTP, re-check the email is still free,
// hash, insert, consume the OTP, log, broadcast, mint. The steps are
// sequential round trips; there is no transaction around them.
func (s *userService) Register(req models.RegisterRequest, ip string) (string, *models.AuthenticatedUser, error) {
	email := strings.TrimSpace(req.Email)

	if err := s.otp.Verify(email, req.OTP); err != nil {
		return "", nil, err
	}

	// second existence check; the window between it and the insert stays open
	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrAlreadyRegistered
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		IsVerified:   true,
	}
	if err := s.users.Create(user); err != nil {
		return "", nil, err
	}

	if err := s.otp.Consume(email); err != nil {
		// user row already exists; the stale code sits until natural expiry
		log.Printf("[auth][register] otp consume failed for %s: %v", email, err)
	}

	if s.activity != nil {
		s.activity.Log(user.ID, "REGISTER", "New user registered via OTP: "+user.Name, ip)
	}
	if s.emails != nil {
		if err := s.emails.SendWelcomeEmail(email, user.Name); err != nil {
			log.Printf("[auth][register] welcome email failed for %s: %v", email, err)
		}
	}
	if s.notifier != nil {
		s.notifier.NotifyNewRegistration(user.Name, email)
	}

	role := s.roleFor(email)
	token, err := s.auth.GenerateToken(user.ID, role)
	if err != nil {
		return "", nil, err
	}

	log.Printf("[auth][register] success user_id=%d email=%s role=%s", user.ID, email, role)
	return token, &models.AuthenticatedUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  role,
	}, nil
}

// Login checks the admins table first. An admin credential match does not
// mint a token yet: it issues an OTP and the caller answers OTP_SENT.
func (s *userService) Login(email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)

	admin, err := s.admins.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if admin != nil {
		if err := s.auth.ComparePassword(admin.PasswordHash, password); err != nil {
			return nil, ErrInvalidCredentials
		}
		if err := s.otp.RequestLoginOTP(email); err != nil {
			return nil, err
		}
		log.Printf("[auth][login] admin otp issued email=%s", email)
		return &LoginResult{OTPSent: true}, nil
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.users.UpdateLastLogin(user.ID); err != nil {
		log.Printf("[auth][login] last_login update failed user_id=%d: %v", user.ID, err)
	}

	token, err := s.auth.GenerateToken(user.ID, authz.RoleStudent)
	if err != nil {
		return nil, err
	}
	log.Printf("[auth][login] success user_id=%d", user.ID)
	return &LoginResult{
		Token: token,
		User: &models.AuthenticatedUser{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Role:           authz.RoleStudent,
			ProfilePicture: user.ProfilePicture,
			ResumePath:     user.ResumePath,
		},
	}, nil
}

func (s *userService) VerifyAdminOTP(email, code string) (string, *models.AuthenticatedUser, error) {
	email = strings.TrimSpace(email)

	if err := s.otp.Verify(email, code); err != nil {
		return "", nil, err
	}

	// double-check the admin still exists before minting
	admin, err := s.admins.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if admin == nil {
		return "", nil, ErrUserNotFound
	}

	token, err := s.auth.GenerateToken(admin.UserID, authz.RoleAdmin)
	if err != nil {
		return "", nil, err
	}

	if err := s.otp.Consume(email); err != nil {
		log.Printf("[auth][admin-otp] otp consume failed for %s: %v", email, err)
	}

	log.Printf("[auth][admin-otp] success user_id=%d", admin.UserID)
	return token, &models.AuthenticatedUser{
		ID:    admin.UserID,
		Name:  admin.FullName,
		Email: admin.Email,
		Role:  authz.RoleAdmin,
	}, nil
}

func (s *userService) ForgotPassword(email string) error {
	email = strings.TrimSpace(email)

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		admin, err := s.admins.GetByEmail(email)
		if err != nil {
			return err
		}
		if admin == nil {
			return ErrUserNotFound
		}
	}
	return s.otp.RequestResetOTP(email)
}

func (s *userService) ResetPassword(email, code, newPassword string) error {
	email = strings.TrimSpace(email)

	if err := s.otp.VerifyExact(email, code); err != nil {
		return err
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	touched, err := s.users.UpdatePasswordByEmail(email, hash)
	if err != nil {
		return err
	}
	if !touched {
		touched, err = s.admins.UpdatePasswordByEmail(email, hash)
		if err != nil {
			return err
		}
		if !touched {
			return ErrUserNotFound
		}
	}

	if err := s.otp.Consume(email); err != nil {
		log.Printf("[auth][reset] otp consume failed for %s: %v", email, err)
	}
	log.Printf("[auth][reset] password reset email=%s", email)
	return nil
}

func (s *userService) ChangePassword(userID int, role, currentPassword, newPassword string) error {
	if role == authz.RoleAdmin {
		admin, err := s.admins.GetByUserID(userID)
		if err != nil {
			return err
		}
		if admin == nil {
			return ErrUserNotFound
		}
		if err := s.auth.ComparePassword(admin.PasswordHash, currentPassword); err != nil {
			return ErrInvalidCredentials
		}
		hash, err := s.auth.HashPassword(newPassword)
		if err != nil {
			return err
		}
		return s.admins.UpdatePassword(userID, hash)
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(userID, hash)
}

func (s *userService) Me(userID int, role string) (*models.AuthenticatedUser, error) {
	if role == authz.RoleAdmin {
		admin, err := s.admins.GetByUserID(userID)
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, ErrUserNotFound
		}
		return &models.AuthenticatedUser{
			ID:    admin.UserID,
			Name:  admin.FullName,
			Email: admin.Email,
			Role:  authz.RoleAdmin,
		}, nil
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &models.AuthenticatedUser{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           authz.RoleStudent,
		ProfilePicture: user.ProfilePicture,
		ResumePath:     user.ResumePath,
	}, nil
}

func (s *userService) ListUsers(limit, offset int) ([]*models.User, error) {
	return s.users.List(limit, offset)
}

func (s *userService) UpdateUser(user *models.User) error {
	return s.users.Update(user)
}

func (s *userService) DeleteUser(id int) error {
	return s.users.Delete(id)
}

func (s *userService) AdminResetUserPassword(userID int, newPassword string) error {
	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(userID, hash)
}
