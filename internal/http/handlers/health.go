package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task-manager/internal/repository"
)

// HealthHandler reports process liveness backed by the pool probe.
type HealthHandler struct {
	pool      *repository.Pool
	startTime time.Time
}

func NewHealthHandler(pool *repository.Pool) *HealthHandler {
	return &HealthHandler{pool: pool, startTime: time.Now()}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if !h.pool.Healthy(ctx) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "database unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}
