package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prolync/internal/services"
)

type CertificateHandler struct {
	service services.CertificateService
}

func NewCertificateHandler(service services.CertificateService) *CertificateHandler {
	return &CertificateHandler{service: service}
}

type issueCertificateRequest struct {
	UserID   int `json:"user_id" binding:"required"`
	CourseID int `json:"course_id" binding:"required"`
}

// @Summary      Issue a certificate (admin)
// @Description  Renders the PDF and records a uuid verification code
// @Tags         Certificates
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      issueCertificateRequest  true  "User and course"
// @Success      201   {object}  models.Certificate
// @Failure      404   {object}  map[string]string
// @Router       /api/certificates [post]
func (h *CertificateHandler) Issue(c *gin.Context) {
	var req issueCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cert, err := h.service.Issue(req.UserID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, services.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		default:
			log.Printf("[certificates][issue] failed user_id=%d course_id=%d: %v", req.UserID, req.CourseID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue certificate"})
		}
		return
	}
	c.JSON(http.StatusCreated, cert)
}

// @Summary      Verify a certificate by code
// @Tags         Certificates
// @Produce      json
// @Param        code  path      string  true  "Verification code"
// @Success      200   {object}  models.Certificate
// @Failure      404   {object}  map[string]string
// @Router       /api/certificates/verify/{code} [get]
func (h *CertificateHandler) Verify(c *gin.Context) {
	code := c.Param("code")
	cert, err := h.service.Verify(code)
	if err != nil {
		if errors.Is(err, services.ErrCertificateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Certificate not found"})
			return
		}
		log.Printf("[certificates][verify] failed code=%s: %v", code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify certificate"})
		return
	}
	c.JSON(http.StatusOK, cert)
}
