package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-manager/internal/errs"
	"task-manager/internal/repository"
	"task-manager/internal/service"
)

// Handler bundles the repositories and services the API endpoints use.
type Handler struct {
	Tasks *repository.TaskRepository
	Users *repository.UserRepository
	Auth  *service.AuthService
}

func NewHandler(pool *repository.Pool, auth *service.AuthService) *Handler {
	return &Handler{
		Tasks: repository.NewTaskRepository(pool),
		Users: repository.NewUserRepository(pool),
		Auth:  auth,
	}
}

// writeError maps the error taxonomy onto HTTP statuses in one place:
// not-found 404, validation 400, auth 401, everything else 500.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errs.IsNotFound(err):
		status = http.StatusNotFound
	case errs.IsValidation(err):
		status = http.StatusBadRequest
	case errs.IsAuth(err):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
