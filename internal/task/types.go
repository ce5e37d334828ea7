package task

import (
	"time"

	"smart-todo/internal/model"
	"smart-todo/pkg/nlparser"
)

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
}

type QuickCreateInput struct {
	Text string
}

type CreateInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    nlparser.Priority // zero means medium
	Category    nlparser.Category // empty means other
}

type ListInput struct {
	Completed *bool
	Category  nlparser.Category
	Priority  nlparser.Priority
	Limit     int
	Offset    int
}

// UpdateInput is a partial update: nil fields are left untouched.
// ClearDueDate removes the due date and wins over DueDate.
type UpdateInput struct {
	ID           string
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	Priority     *nlparser.Priority
	Category     *nlparser.Category
	Completed    *bool
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Result nlparser.Result
}

type QuickCreateOutput struct {
	Task   model.Task
	Result nlparser.Result
}

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}

type ToggleOutput struct {
	Task model.Task
}

type StatsOutput struct {
	Stats model.TaskStats
}
