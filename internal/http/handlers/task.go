package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"task-manager/internal/errs"
	"task-manager/internal/http/middleware"
	"task-manager/internal/model"
)

type createTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.Validation(err.Error()))
		return
	}

	input := model.CreateTask{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		UserID:      middleware.UserID(c),
	}
	if req.Status != "" {
		status, err := model.ParseTaskStatus(req.Status)
		if err != nil {
			writeError(c, errs.Validation(err.Error()))
			return
		}
		input.Status = status
	}
	if req.Priority != "" {
		priority, err := model.ParseTaskPriority(req.Priority)
		if err != nil {
			writeError(c, errs.Validation(err.Error()))
			return
		}
		input.Priority = priority
	}

	task, err := h.Tasks.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c *gin.Context) {
	id, err := taskID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.authorizeTask(c, id); err != nil {
		writeError(c, err)
		return
	}

	task, err := h.Tasks.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ListTasks returns the caller's tasks, optionally filtered by exactly one
// of status or priority.
func (h *Handler) ListTasks(c *gin.Context) {
	userID := middleware.UserID(c)
	ctx := c.Request.Context()

	statusRaw := c.Query("status")
	priorityRaw := c.Query("priority")
	if statusRaw != "" && priorityRaw != "" {
		writeError(c, errs.Validation("filter by either status or priority, not both"))
		return
	}

	var (
		tasks []model.Task
		err   error
	)
	switch {
	case statusRaw != "":
		var status model.TaskStatus
		if status, err = model.ParseTaskStatus(statusRaw); err != nil {
			writeError(c, errs.Validation(err.Error()))
			return
		}
		tasks, err = h.Tasks.FindByUserAndStatus(ctx, userID, status)
	case priorityRaw != "":
		var priority model.TaskPriority
		if priority, err = model.ParseTaskPriority(priorityRaw); err != nil {
			writeError(c, errs.Validation(err.Error()))
			return
		}
		tasks, err = h.Tasks.FindByUserAndPriority(ctx, userID, priority)
	default:
		tasks, err = h.Tasks.FindByUser(ctx, userID)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, err := taskID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.Validation(err.Error()))
		return
	}

	input := model.UpdateTask{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status, err := model.ParseTaskStatus(*req.Status)
		if err != nil {
			writeError(c, errs.Validation(err.Error()))
			return
		}
		input.Status = &status
	}
	if req.Priority != nil {
		priority, err := model.ParseTaskPriority(*req.Priority)
		if err != nil {
			writeError(c, errs.Validation(err.Error()))
			return
		}
		input.Priority = &priority
	}

	if err := h.authorizeTask(c, id); err != nil {
		writeError(c, err)
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := taskID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.authorizeTask(c, id); err != nil {
		writeError(c, err)
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// TaskStats reports the caller's total task count.
func (h *Handler) TaskStats(c *gin.Context) {
	count, err := h.Tasks.CountByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": count})
}

// authorizeTask ensures the task exists (404 otherwise) and belongs to the
// caller (401 otherwise). The ownership check is the hot path; the
// existence lookup only runs on a miss, to tell 404 from 401.
func (h *Handler) authorizeTask(c *gin.Context, id int64) error {
	ctx := c.Request.Context()
	belongs, err := h.Tasks.BelongsToUser(ctx, id, middleware.UserID(c))
	if err != nil {
		return err
	}
	if belongs {
		return nil
	}
	if _, err := h.Tasks.FindByID(ctx, id); err != nil {
		return err
	}
	return errs.Unauthorized("task does not belong to user")
}

func taskID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.Validation("invalid task id")
	}
	return id, nil
}
