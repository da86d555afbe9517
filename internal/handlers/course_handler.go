package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prolync/internal/models"
	"prolync/internal/services"
)

type CourseHandler struct {
	service services.CourseService
}

func NewCourseHandler(service services.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// @Summary      List courses
// @Description  With a valid token each course carries an is_enrolled flag for the caller
// @Tags         Courses
// @Produce      json
// @Param        search  query     string  false  "Title search"
// @Param        level   query     string  false  "Level filter"
// @Param        status  query     string  false  "Status filter"
// @Success      200     {array}   models.Course
// @Router       /api/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	filter := models.CourseFilter{
		Search: c.Query("search"),
		Level:  c.Query("level"),
		Status: c.Query("status"),
	}
	courses, err := h.service.List(filter, userID)
	if err != nil {
		log.Printf("[courses][list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// @Summary      Course details
// @Tags         Courses
// @Produce      json
// @Param        id   path      int  true  "Course ID"
// @Success      200  {object}  models.Course
// @Failure      404  {object}  map[string]string
// @Router       /api/courses/{id} [get]
func (h *CourseHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid course ID"})
		return
	}
	course, err := h.service.GetByID(id)
	if err != nil {
		log.Printf("[courses][get] failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load course"})
		return
	}
	if course == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// @Summary      Create a course (admin)
// @Tags         Courses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      models.Course  true  "Course"
// @Success      201   {object}  models.Course
// @Router       /api/admin/courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if course.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
		return
	}
	if err := h.service.Create(&course); err != nil {
		log.Printf("[courses][create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create course"})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// @Summary      Update a course (admin)
// @Tags         Courses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Course ID"
// @Param        body  body      models.Course  true  "Course"
// @Success      200   {object}  models.Course
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid course ID"})
		return
	}
	existing, err := h.service.GetByID(id)
	if err != nil {
		log.Printf("[courses][update] lookup failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update course"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	}

	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	course.ID = id
	if err := h.service.Update(&course); err != nil {
		log.Printf("[courses][update] failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update course"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// @Summary      Delete a course (admin)
// @Tags         Courses
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Course ID"
// @Success      200  {object}  map[string]string
// @Router       /api/admin/courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid course ID"})
		return
	}
	if err := h.service.Delete(id); err != nil {
		log.Printf("[courses][delete] failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete course"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

// @Summary      Enroll in a course
// @Tags         Courses
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Course ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/courses/{id}/enroll [post]
func (h *CourseHandler) Enroll(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid course ID"})
		return
	}
	if err := h.service.Enroll(userID, id); err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
			return
		}
		log.Printf("[courses][enroll] failed user_id=%d course_id=%d: %v", userID, id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to enroll"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Enrolled successfully"})
}

// @Summary      Courses of the current user
// @Tags         Courses
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  models.Enrollment
// @Router       /api/my-courses [get]
func (h *CourseHandler) MyCourses(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	enrollments, err := h.service.MyCourses(userID)
	if err != nil {
		log.Printf("[courses][my] failed user_id=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load courses"})
		return
	}
	c.JSON(http.StatusOK, enrollments)
}
