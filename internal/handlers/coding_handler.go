package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prolync/internal/services"
)

type CodingHandler struct {
	service services.CodingService
}

func NewCodingHandler(service services.CodingService) *CodingHandler {
	return &CodingHandler{service: service}
}

type submitSolutionRequest struct {
	Language   string `json:"language" binding:"required"`
	SourceCode string `json:"source_code" binding:"required"`
}

// @Summary      List practice problems
// @Tags         Coding
// @Produce      json
// @Param        difficulty  query     string  false  "Difficulty filter"
// @Param        topic       query     string  false  "Topic filter"
// @Success      200         {array}   models.Problem
// @Router       /api/problems [get]
func (h *CodingHandler) ListProblems(c *gin.Context) {
	problems, err := h.service.ListProblems(c.Query("difficulty"), c.Query("topic"))
	if err != nil {
		log.Printf("[coding][list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load problems"})
		return
	}
	c.JSON(http.StatusOK, problems)
}

// @Summary      Problem details
// @Tags         Coding
// @Produce      json
// @Param        id   path      int  true  "Problem ID"
// @Success      200  {object}  models.Problem
// @Failure      404  {object}  map[string]string
// @Router       /api/problems/{id} [get]
func (h *CodingHandler) GetProblem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid problem ID"})
		return
	}
	problem, err := h.service.GetProblem(id)
	if err != nil {
		if errors.Is(err, services.ErrProblemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Problem not found"})
			return
		}
		log.Printf("[coding][get] failed id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load problem"})
		return
	}
	c.JSON(http.StatusOK, problem)
}

// @Summary      Submit a solution
// @Description  Runs the source against the stored test cases and records the verdict
// @Tags         Coding
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Problem ID"
// @Param        body  body      submitSolutionRequest  true  "Solution"
// @Success      201   {object}  models.Submission
// @Failure      404   {object}  map[string]string
// @Router       /api/problems/{id}/submit [post]
func (h *CodingHandler) Submit(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid problem ID"})
		return
	}

	var req submitSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	sub, err := h.service.Submit(userID, id, req.Language, req.SourceCode)
	if err != nil {
		if errors.Is(err, services.ErrProblemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Problem not found"})
			return
		}
		if errors.Is(err, services.ErrNoTestCases) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Problem has no test cases"})
			return
		}
		log.Printf("[coding][submit] failed user_id=%d problem_id=%d: %v", userID, id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to judge submission"})
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// @Summary      Submission history for a problem
// @Tags         Coding
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Problem ID"
// @Success      200  {array}   models.Submission
// @Router       /api/problems/{id}/submissions [get]
func (h *CodingHandler) Submissions(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid problem ID"})
		return
	}
	subs, err := h.service.Submissions(userID, id)
	if err != nil {
		log.Printf("[coding][submissions] failed user_id=%d problem_id=%d: %v", userID, id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load submissions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}
