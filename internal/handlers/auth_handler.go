package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prolync/internal/models"
	"prolync/internal/services"
)

type AuthHandler struct {
	users services.UserService
}

func NewAuthHandler(users services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type sendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// otpErrorResponse maps the otp sentinels onto the wire contract.
func otpErrorResponse(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, services.ErrAlreadyRegistered):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
	case errors.Is(err, services.ErrOTPThrottled):
		c.JSON(http.StatusTooManyRequests, gin.H{"message": "Please wait 1 minute before requesting another OTP"})
	case errors.Is(err, services.ErrOTPExpired):
		c.JSON(http.StatusBadRequest, gin.H{"message": "OTP has expired"})
	case errors.Is(err, services.ErrOTPNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired OTP"})
	case errors.Is(err, services.ErrOTPMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid OTP"})
	default:
		return false
	}
	return true
}

// @Summary      Request a signup OTP
// @Description  Emails a 6-digit code; one live code per address, 60s cooldown
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      sendOTPRequest  true  "Email"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/send-otp [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.users.RequestSignupOTP(req.Email); err != nil {
		if otpErrorResponse(c, err) {
			return
		}
		log.Printf("[auth][send-otp] failed email=%s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your email"})
}

// @Summary      Complete registration
// @Description  Verifies the OTP, creates the account and returns a session token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.RegisterRequest  true  "Registration payload"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	token, user, err := h.users.Register(req, c.ClientIP())
	if err != nil {
		if otpErrorResponse(c, err) {
			return
		}
		log.Printf("[auth][register] failed email=%s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// @Summary      Log in
// @Description  Students get a token directly; admins get an OTP challenge
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	res, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		log.Printf("[auth][login] failed email=%s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}
	if res.OTPSent {
		c.JSON(http.StatusOK, gin.H{"status": "OTP_SENT", "message": "OTP sent to your email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": res.Token, "user": res.User})
}

// @Summary      Verify the admin login OTP
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Email and OTP"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/verify-admin-otp [post]
func (h *AuthHandler) VerifyAdminOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, user, err := h.users.VerifyAdminOTP(req.Email, req.OTP)
	if err != nil {
		if otpErrorResponse(c, err) {
			return
		}
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		log.Printf("[auth][admin-otp] failed email=%s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Verification failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// @Summary      Request a password-reset OTP
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Email"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.users.ForgotPassword(req.Email); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("[auth][forgot] failed email=%s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset OTP sent to your email"})
}

// @Summary      Reset password with an OTP
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Email, OTP and new password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.users.ResetPassword(req.Email, req.OTP, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrOTPMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired OTP"})
			return
		}
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("[auth][reset] failed email=%s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reset password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// @Summary      Change the current password
// @Tags         Auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, role := getUserAndRole(c)

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.users.ChangePassword(userID, role, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Current password is incorrect"})
			return
		}
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("[auth][change-password] failed user_id=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to change password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// @Summary      Current user profile
// @Tags         Auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.AuthenticatedUser
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, role := getUserAndRole(c)

	user, err := h.users.Me(userID, role)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("[auth][me] failed user_id=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}
