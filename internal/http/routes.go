package http

import (
	"github.com/gin-gonic/gin"

	"task-manager/internal/http/handlers"
	"task-manager/internal/http/middleware"
	"task-manager/internal/repository"
	"task-manager/internal/service"
)

// RegisterRoutes wires the API surface onto the gin engine.
func RegisterRoutes(r *gin.Engine, pool *repository.Pool, auth *service.AuthService) {
	h := handlers.NewHandler(pool, auth)
	health := handlers.NewHealthHandler(pool)

	r.GET("/health", health.Health)

	api := r.Group("/api")
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	tasks := api.Group("/tasks", middleware.RequireAuth(auth))
	tasks.POST("", h.CreateTask)
	tasks.GET("", h.ListTasks)
	tasks.GET("/stats", h.TaskStats)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)
}
