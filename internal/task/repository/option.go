package repository

import (
	"time"

	"smart-todo/pkg/nlparser"
)

// CreateTaskOptions holds the full record of a new Task. The caller
// assigns the ID and timestamps.
type CreateTaskOptions struct {
	ID          string
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    nlparser.Priority
	Category    nlparser.Category
	CreatedAt   time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID              string
	CalendarEventID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// Zero-valued filters are not applied. Results always come back in the
// listing order: priority, then due date, then newest first.
type ListTasksOptions struct {
	Completed *bool
	Category  nlparser.Category
	Priority  nlparser.Priority
	Limit     int
	Offset    int
}

// UpdateTaskOptions replaces every mutable column of an existing Task.
type UpdateTaskOptions struct {
	ID              string
	Title           string
	Description     *string
	DueDate         *time.Time
	Priority        nlparser.Priority
	Category        nlparser.Category
	Completed       bool
	CalendarEventID string
	UpdatedAt       time.Time
}
