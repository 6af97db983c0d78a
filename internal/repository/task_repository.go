package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"task-manager/internal/errs"
	"task-manager/internal/model"
)

// TaskRepository handles CRUD for tasks. It holds no state of its own
// beyond the pool handle; every call borrows a connection and returns it.
type TaskRepository struct {
	pool *Pool
}

func NewTaskRepository(pool *Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// Create inserts a task and returns the stored row, including the
// generated id and store-assigned timestamps.
func (r *TaskRepository) Create(ctx context.Context, input model.CreateTask) (*model.Task, error) {
	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		UserID:      input.UserID,
	}
	if task.Status == "" {
		task.Status = model.DefaultStatus
	}
	if task.Priority == "" {
		task.Priority = model.DefaultPriority
	}

	db, cancel := r.pool.session(ctx)
	defer cancel()
	if err := db.Create(&task).Error; err != nil {
		return nil, errs.Database(fmt.Errorf("create task: %w", err))
	}

	// Re-read so the caller sees exactly what the store persisted.
	return r.FindByID(ctx, task.ID)
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	db, cancel := r.pool.session(ctx)
	defer cancel()

	var task model.Task
	err := db.First(&task, "id = ?", id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errs.TaskNotFound(id)
	case err != nil:
		return nil, errs.Database(fmt.Errorf("find task: %w", err))
	}
	return &task, nil
}

// FindByUser returns all tasks owned by the user, newest first. A user
// with no tasks yields an empty slice, not an error.
func (r *TaskRepository) FindByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	db, cancel := r.pool.session(ctx)
	defer cancel()

	tasks := []model.Task{}
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, errs.Database(fmt.Errorf("find tasks by user: %w", err))
	}
	return tasks, nil
}

func (r *TaskRepository) FindByUserAndStatus(ctx context.Context, userID int64, status model.TaskStatus) ([]model.Task, error) {
	db, cancel := r.pool.session(ctx)
	defer cancel()

	tasks := []model.Task{}
	if err := db.Where("user_id = ? AND status = ?", userID, status).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, errs.Database(fmt.Errorf("find tasks by status: %w", err))
	}
	return tasks, nil
}

func (r *TaskRepository) FindByUserAndPriority(ctx context.Context, userID int64, priority model.TaskPriority) ([]model.Task, error) {
	db, cancel := r.pool.session(ctx)
	defer cancel()

	tasks := []model.Task{}
	if err := db.Where("user_id = ? AND priority = ?", userID, priority).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, errs.Database(fmt.Errorf("find tasks by priority: %w", err))
	}
	return tasks, nil
}

// Update applies a partial update and returns the refreshed row. Field
// presence, not value, decides which columns are touched; updated_at
// advances on every call, even when no other field is set.
func (r *TaskRepository) Update(ctx context.Context, id int64, input model.UpdateTask) (*model.Task, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Priority != nil {
		updates["priority"] = *input.Priority
	}
	if input.DueDate != nil {
		updates["due_date"] = *input.DueDate
	}

	db, cancel := r.pool.session(ctx)
	defer cancel()
	if err := db.Model(&model.Task{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, errs.Database(fmt.Errorf("update task: %w", err))
	}

	return r.FindByID(ctx, id)
}

// Delete removes a task. Existence is inferred from the affected-row count
// rather than a separate lookup, so the check is race-safe.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	db, cancel := r.pool.session(ctx)
	defer cancel()

	res := db.Where("id = ?", id).Delete(&model.Task{})
	if res.Error != nil {
		return errs.Database(fmt.Errorf("delete task: %w", res.Error))
	}
	if res.RowsAffected == 0 {
		return errs.TaskNotFound(id)
	}
	return nil
}

func (r *TaskRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	db, cancel := r.pool.session(ctx)
	defer cancel()

	var count int64
	if err := db.Model(&model.Task{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, errs.Database(fmt.Errorf("count tasks: %w", err))
	}
	return count, nil
}

// BelongsToUser reports whether the task exists and is owned by the user.
// Absence yields false, never a not-found error.
func (r *TaskRepository) BelongsToUser(ctx context.Context, taskID, userID int64) (bool, error) {
	db, cancel := r.pool.session(ctx)
	defer cancel()

	var count int64
	if err := db.Model(&model.Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Count(&count).Error; err != nil {
		return false, errs.Database(fmt.Errorf("check task owner: %w", err))
	}
	return count > 0, nil
}
