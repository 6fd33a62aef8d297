package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"prep-dashboard/internal/service"
)

// Server wires HTTP handlers to the dashboard services.
type Server struct {
	tasks    *service.TaskService
	progress *service.ProgressService
	recs     *service.RecommendationService
}

func NewServer(tasks *service.TaskService, progress *service.ProgressService, recs *service.RecommendationService) *Server {
	return &Server{tasks: tasks, progress: progress, recs: recs}
}

// Router builds the gin engine with all routes mounted under /api.
func (s *Server) Router(corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig(corsOrigins)))

	api := r.Group("/api")
	api.GET("/", s.root)
	api.POST("/tasks/initialize", s.initializeTasks)
	api.GET("/tasks", s.listTasks)
	api.PUT("/tasks/:id", s.updateTask)
	api.GET("/progress/weekly", s.weeklyProgress)
	api.GET("/progress/daily", s.dailyProgress)
	api.POST("/ai/recommendations", s.aiRecommendations)
	api.GET("/ai/recommendations/history", s.recommendationHistory)
	api.GET("/dashboard/overview", s.dashboardOverview)

	return r
}

// corsConfig builds a permissive policy from the configured allow-list.
// A single "*" entry allows every origin; credentials are only enabled
// for explicit origin lists, as the wildcard forbids them.
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
