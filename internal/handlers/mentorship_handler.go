package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prolync/internal/services"
)

type MentorshipHandler struct {
	service services.MentorshipService
}

func NewMentorshipHandler(service services.MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{service: service}
}

type bookSessionRequest struct {
	MentorID int    `json:"mentor_id" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
	Topic    string `json:"topic"`
}

// @Summary      List mentors
// @Description  Includes a computed fully-booked flag per mentor
// @Tags         Mentorship
// @Produce      json
// @Success      200  {array}   models.Mentor
// @Router       /api/mentorship/mentors [get]
func (h *MentorshipHandler) ListMentors(c *gin.Context) {
	mentors, err := h.service.ListMentors()
	if err != nil {
		log.Printf("[mentorship][list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load mentors"})
		return
	}
	c.JSON(http.StatusOK, mentors)
}

// @Summary      Slot occupancy for a mentor
// @Tags         Mentorship
// @Produce      json
// @Param        mentor_id  path  int  true  "Mentor ID"
// @Success      200  {array}   models.SlotOccupancy
// @Failure      404  {object}  map[string]string
// @Router       /api/mentorship/booked-slots/{mentor_id} [get]
func (h *MentorshipHandler) BookedSlots(c *gin.Context) {
	id, ok := pathID(c, "mentor_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid mentor ID"})
		return
	}
	slots, err := h.service.BookedSlots(id)
	if err != nil {
		if errors.Is(err, services.ErrMentorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Mentor not found"})
			return
		}
		log.Printf("[mentorship][slots] failed mentor_id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load slots"})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// @Summary      Book a mentorship session
// @Description  Rejects past slots, duplicates and full slots
// @Tags         Mentorship
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      bookSessionRequest  true  "Booking payload"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/mentorship/book [post]
func (h *MentorshipHandler) Book(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	var req bookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	booking, err := h.service.Book(userID, req.MentorID, req.TimeSlot, req.Topic)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlotInPast):
			c.JSON(http.StatusBadRequest, gin.H{"message": "This time slot is no longer available"})
		case errors.Is(err, services.ErrMentorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Mentor not found"})
		case errors.Is(err, services.ErrDuplicateBooking):
			c.JSON(http.StatusBadRequest, gin.H{"message": "You have already booked this slot"})
		case errors.Is(err, services.ErrSlotFull):
			c.JSON(http.StatusBadRequest, gin.H{"message": "This slot is fully booked"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			log.Printf("[mentorship][book] failed user_id=%d mentor_id=%d: %v", userID, req.MentorID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to book session"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Session booked successfully", "booking": booking})
}

// @Summary      All booked sessions (admin)
// @Tags         Mentorship
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  models.Booking
// @Router       /api/mentorship/sessions [get]
func (h *MentorshipHandler) Sessions(c *gin.Context) {
	sessions, err := h.service.Sessions()
	if err != nil {
		log.Printf("[mentorship][sessions] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load sessions"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
