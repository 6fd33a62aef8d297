package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prep-dashboard/internal/model"
	"prep-dashboard/internal/repository"
	"prep-dashboard/internal/service"
)

// recommendationRequest mirrors the inbound body of the AI endpoint.
// The optional context hint is accepted for wire compatibility; the
// service builds its own context from today's tasks.
type recommendationRequest struct {
	UserPrompt string `json:"user_prompt"`
	Context    string `json:"context"`
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Internship Prep Dashboard API"})
}

func (s *Server) initializeTasks(c *gin.Context) {
	count, err := s.tasks.Initialize(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Initialized %d tasks", count),
		"count":   count,
	})
}

func (s *Server) listTasks(c *gin.Context) {
	filter, err := parseTaskFilter(c)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}

	tasks, err := s.tasks.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) updateTask(c *gin.Context) {
	var patch service.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusInternalServerError, fmt.Errorf("invalid request body: %w", err))
		return
	}

	task, err := s.tasks.Update(c.Request.Context(), c.Param("id"), patch)
	switch {
	case errors.Is(err, repository.ErrTaskNotFound):
		fail(c, http.StatusNotFound, errors.New("Task not found"))
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) weeklyProgress(c *gin.Context) {
	progress, err := s.progress.Weekly(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (s *Server) dailyProgress(c *gin.Context) {
	progress, err := s.progress.Daily(c.Request.Context(), c.Query("date"))
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (s *Server) aiRecommendations(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusInternalServerError, fmt.Errorf("invalid request body: %w", err))
		return
	}

	result, err := s.recs.Get(c.Request.Context(), req.UserPrompt)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) recommendationHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, http.StatusInternalServerError, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	history, err := s.recs.History(c.Request.Context(), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (s *Server) dashboardOverview(c *gin.Context) {
	overview, err := s.progress.Overview(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// parseTaskFilter reads the optional equality filters off the query
// string, validating enum values.
func parseTaskFilter(c *gin.Context) (repository.TaskFilter, error) {
	var filter repository.TaskFilter

	if raw := c.Query("category"); raw != "" {
		category := model.Category(raw)
		if !category.Valid() {
			return filter, fmt.Errorf("invalid category %q", raw)
		}
		filter.Category = &category
	}
	if raw := c.Query("status"); raw != "" {
		status := model.Status(raw)
		if !status.Valid() {
			return filter, fmt.Errorf("invalid status %q", raw)
		}
		filter.Status = &status
	}
	if raw := c.Query("week"); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid week %q", raw)
		}
		filter.WeekNumber = &week
	}
	if raw := c.Query("date"); raw != "" {
		date := raw
		filter.Date = &date
	}

	return filter, nil
}

// fail logs the error and writes the uniform {detail} envelope.
func fail(c *gin.Context, status int, err error) {
	log.Printf("[error] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(status, gin.H{"detail": err.Error()})
}
