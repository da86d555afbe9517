package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prolync/internal/services"
)

type StudentHandler struct {
	stats    services.StatsService
	activity services.ActivityService
}

func NewStudentHandler(stats services.StatsService, activity services.ActivityService) *StudentHandler {
	return &StudentHandler{stats: stats, activity: activity}
}

// @Summary      Student dashboard stats
// @Description  Learning minutes, current streak and course counts
// @Tags         Student
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.StudentStats
// @Router       /api/student/stats [get]
func (h *StudentHandler) Stats(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	stats, err := h.stats.StudentStats(userID)
	if err != nil {
		log.Printf("[student][stats] failed user_id=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

type logActivityRequest struct {
	Action  string `json:"action" binding:"required"`
	Details string `json:"details"`
}

// @Summary      Record a learning activity
// @Description  Appends an activity row and broadcasts it to live listeners
// @Tags         Student
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      logActivityRequest  true  "Activity"
// @Success      201   {object}  map[string]string
// @Router       /api/student/activity/log [post]
func (h *StudentHandler) LogActivity(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	var req logActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	h.activity.Log(userID, req.Action, req.Details, c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"message": "Activity recorded"})
}

// @Summary      Recent activity of the current user
// @Tags         Student
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  models.ActivityLog
// @Router       /api/student/activity [get]
func (h *StudentHandler) Activity(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	feed, err := h.activity.Feed(userID)
	if err != nil {
		log.Printf("[student][activity] failed user_id=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load activity"})
		return
	}
	c.JSON(http.StatusOK, feed)
}
