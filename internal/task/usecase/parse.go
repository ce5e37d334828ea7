package usecase

import (
	"context"
	"time"

	"smart-todo/internal/metrics"
	"smart-todo/internal/task"
	"smart-todo/pkg/nlparser"
)

// Parse reads a task description without storing anything.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (output task.ParseOutput, err error) {
	defer func() { uc.metrics.IncTaskOperation("parse", err) }()

	if err := uc.validateText(input.Text); err != nil {
		return task.ParseOutput{}, err
	}

	return task.ParseOutput{Result: uc.parse(ctx, input.Text)}, nil
}

// QuickCreate parses a task description and stores the result as a task.
func (uc *implUseCase) QuickCreate(ctx context.Context, input task.QuickCreateInput) (output task.QuickCreateOutput, err error) {
	defer func() { uc.metrics.IncTaskOperation("quick_create", err) }()

	if err := uc.validateText(input.Text); err != nil {
		return task.QuickCreateOutput{}, err
	}

	result := uc.parse(ctx, input.Text)
	created, err := uc.createTask(ctx, newTask{
		Title:    truncateTitle(result.Title),
		DueDate:  result.DueDate,
		Priority: result.Priority,
		Category: result.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.QuickCreate createTask: %v", err)
		return task.QuickCreateOutput{}, err
	}

	return task.QuickCreateOutput{Task: created, Result: result}, nil
}

func (uc *implUseCase) parse(ctx context.Context, text string) nlparser.Result {
	start := time.Now()
	result := uc.parser.ParseAt(ctx, text, uc.now())

	uc.metrics.ObserveParse(metrics.ParseObservation{
		Duration:         time.Since(start),
		Overall:          result.Confidence.Overall,
		DateDetected:     result.DueDate != nil,
		PriorityDetected: result.Confidence.Priority > 0.5,
		CategoryDetected: result.Category != nlparser.CategoryOther,
	})
	uc.l.Debugf(ctx, "uc.parse: priority=%d category=%s due=%v overall=%.2f",
		result.Priority, result.Category, result.DueDate, result.Confidence.Overall)
	return result
}
