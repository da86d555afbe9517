package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prolync/internal/models"
	"prolync/internal/services"
)

type JobHandler struct {
	service services.JobService
}

func NewJobHandler(service services.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// @Summary      List job postings
// @Tags         Jobs
// @Produce      json
// @Param        type    query     string  false  "Job type filter"
// @Param        status  query     string  false  "Status filter"
// @Success      200     {array}   models.Job
// @Router       /api/jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.service.List(c.Query("type"), c.Query("status"))
	if err != nil {
		log.Printf("[jobs][list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// @Summary      Job details
// @Tags         Jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  models.Job
// @Failure      404  {object}  map[string]string
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}
	job, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		log.Printf("[jobs][get] failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// @Summary      Create a job posting (admin)
// @Tags         Jobs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      models.Job  true  "Job"
// @Success      201   {object}  models.Job
// @Router       /api/admin/jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var job models.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if job.JobTitle == "" || job.CompanyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Job title and company name are required"})
		return
	}
	if err := h.service.Create(&job); err != nil {
		log.Printf("[jobs][create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create job"})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// @Summary      Update a job posting (admin)
// @Tags         Jobs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int         true  "Job ID"
// @Param        body  body      models.Job  true  "Job"
// @Success      200   {object}  models.Job
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}
	if _, err := h.service.GetByID(id); err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		log.Printf("[jobs][update] lookup failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update job"})
		return
	}

	var job models.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	job.JobID = id
	if err := h.service.Update(&job); err != nil {
		log.Printf("[jobs][update] failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// @Summary      Delete a job posting (admin)
// @Tags         Jobs
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  map[string]string
// @Router       /api/admin/jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}
	if err := h.service.Delete(id); err != nil {
		log.Printf("[jobs][delete] failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete job"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
