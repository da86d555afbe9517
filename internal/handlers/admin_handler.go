package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prolync/internal/models"
	"prolync/internal/services"
)

type AdminHandler struct {
	users    services.UserService
	stats    services.StatsService
	activity services.ActivityService
}

func NewAdminHandler(users services.UserService, stats services.StatsService, activity services.ActivityService) *AdminHandler {
	return &AdminHandler{users: users, stats: stats, activity: activity}
}

type adminResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// @Summary      Platform-wide dashboard stats
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.DashboardStats
// @Router       /api/admin/stats [get]
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.stats.DashboardStats()
	if err != nil {
		log.Printf("[admin][stats] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary      Dashboard chart data
// @Description  Course distribution and the user growth series
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/admin/charts [get]
func (h *AdminHandler) ChartData(c *gin.Context) {
	data, err := h.stats.ChartData()
	if err != nil {
		log.Printf("[admin][charts] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load chart data"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary      Recent platform activity
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  models.ActivityLog
// @Router       /api/admin/activity [get]
func (h *AdminHandler) RecentActivity(c *gin.Context) {
	feed, err := h.activity.RecentWithUsers(10)
	if err != nil {
		log.Printf("[admin][activity] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load activity"})
		return
	}
	c.JSON(http.StatusOK, feed)
}

// @Summary      Most active users
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  models.TopUser
// @Router       /api/admin/top-users [get]
func (h *AdminHandler) TopUsers(c *gin.Context) {
	top, err := h.activity.TopUsers(5)
	if err != nil {
		log.Printf("[admin][top-users] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load top users"})
		return
	}
	c.JSON(http.StatusOK, top)
}

// @Summary      List registered users
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query     int  false  "Page size"    default(50)
// @Param        offset  query     int  false  "Page offset"  default(0)
// @Success      200     {array}   models.User
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	users, err := h.users.ListUsers(limit, offset)
	if err != nil {
		log.Printf("[admin][users] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Update a user
// @Tags         Admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "User ID"
// @Param        body  body      models.User  true  "User"
// @Success      200   {object}  models.User
// @Router       /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	user.ID = id
	if err := h.users.UpdateUser(&user); err != nil {
		log.Printf("[admin][user-update] failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Delete a user
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  map[string]string
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}
	if err := h.users.DeleteUser(id); err != nil {
		log.Printf("[admin][user-delete] failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// @Summary      Reset a user's password
// @Tags         Admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int                        true  "User ID"
// @Param        body  body      adminResetPasswordRequest  true  "New password"
// @Success      200   {object}  map[string]string
// @Router       /api/admin/users/{id}/reset-password [post]
func (h *AdminHandler) ResetUserPassword(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	var req adminResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.users.AdminResetUserPassword(id, req.NewPassword); err != nil {
		log.Printf("[admin][user-reset-password] failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reset password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}
