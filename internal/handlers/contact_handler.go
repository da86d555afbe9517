package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prolync/internal/models"
	"prolync/internal/services"
)

type ContactHandler struct {
	service services.ContactService
}

func NewContactHandler(service services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// @Summary      Submit a contact message
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      201   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.service.Submit(msg); err != nil {
		log.Printf("[contact][submit] failed email=%s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}
