package repository

import (
	"context"
	"time"

	"smart-todo/internal/model"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
	StatsRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetOneTask returns a zero Task (ID == "") when nothing matches.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	// UpdateTask returns a zero Task when the ID does not exist.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// StatsRepository aggregates over the whole store.
type StatsRepository interface {
	GetStats(ctx context.Context, now time.Time) (model.TaskStats, error)
}
