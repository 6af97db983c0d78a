package model

import (
	"fmt"
	"time"
)

// TaskStatus tracks a task through todo -> in_progress -> done.
// Values are stored as text, so the string mapping here is load-bearing
// and must never change for existing rows.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// DefaultStatus is applied when a new task does not specify one.
const DefaultStatus = StatusTodo

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseTaskStatus maps the stored/wire text form back to a TaskStatus.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	s := TaskStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown task status %q", raw)
	}
	return s, nil
}

// TaskPriority is the urgency level of a task, totally ordered
// low < medium < high < urgent.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// DefaultPriority is applied when a new task does not specify one.
const DefaultPriority = PriorityMedium

// priorityRank orders priorities explicitly rather than by declaration
// position, so reordering constants can never change sort behavior.
var priorityRank = map[TaskPriority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
	PriorityUrgent: 4,
}

func (p TaskPriority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// Rank returns the position of p in the priority order, higher is more urgent.
func (p TaskPriority) Rank() int {
	return priorityRank[p]
}

// Less reports whether p is less urgent than other.
func (p TaskPriority) Less(other TaskPriority) bool {
	return priorityRank[p] < priorityRank[other]
}

// ParseTaskPriority maps the stored/wire text form back to a TaskPriority.
func ParseTaskPriority(raw string) (TaskPriority, error) {
	p := TaskPriority(raw)
	if !p.Valid() {
		return "", fmt.Errorf("unknown task priority %q", raw)
	}
	return p, nil
}

// Task is a single tracked item. Every task belongs to exactly one user;
// title and description are never null (empty string is fine).
type Task struct {
	ID          int64        `gorm:"primaryKey" json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
	UserID      int64        `gorm:"index" json:"user_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CreateTask carries the fields needed to insert a task; id and timestamps
// are assigned by the store. Empty status/priority fall back to the defaults.
type CreateTask struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
	UserID      int64        `json:"user_id"`
}

// UpdateTask is a partial-update projection: nil means "leave unchanged".
// A non-nil DueDate overwrites the stored value; the wire layer collapses
// "clear" and "not specified" before it reaches this type.
type UpdateTask struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	DueDate     *time.Time    `json:"due_date"`
}
