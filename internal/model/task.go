package model

import (
	"time"

	"smart-todo/pkg/nlparser"
)

// Task is a persisted to-do item.
type Task struct {
	ID              string            // UUIDv4
	Title           string            // Display title, at most 255 characters
	Description     *string           // Free text, optional
	DueDate         *time.Time        // Optional deadline
	Priority        nlparser.Priority // 1=low .. 4=urgent
	Category        nlparser.Category // work, personal, study, health, shopping or other
	Completed       bool              // Done flag, flipped by Toggle
	CalendarEventID string            // Mirrored Google Calendar event, empty when not synced
	CreatedAt       time.Time         // Creation timestamp
	UpdatedAt       time.Time         // Last modification timestamp
}

// IsOverdue reports whether the task has a due date in the past and is
// still open.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && !t.Completed && now.After(*t.DueDate)
}

// TaskStats summarizes the task store.
type TaskStats struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}
