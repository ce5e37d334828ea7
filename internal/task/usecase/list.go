package usecase

import (
	"context"

	"smart-todo/internal/task"
	repo "smart-todo/internal/task/repository"
)

// List returns a page of tasks in priority / due date order.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (output task.ListOutput, err error) {
	defer func() { uc.metrics.IncTaskOperation("list", err) }()

	opt := repo.ListTasksOptions{
		Completed: input.Completed,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}
	if input.Category != "" {
		if opt.Category, err = resolveCategory(input.Category); err != nil {
			return task.ListOutput{}, err
		}
	}
	if input.Priority != 0 {
		if !input.Priority.Valid() {
			return task.ListOutput{}, task.ErrInvalidPriority
		}
		opt.Priority = input.Priority
	}
	if opt.Limit <= 0 {
		opt.Limit = task.DefaultListLimit
	}
	if opt.Limit > task.MaxListLimit {
		opt.Limit = task.MaxListLimit
	}
	if opt.Offset < 0 {
		opt.Offset = 0
	}

	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  opt.Limit,
		Offset: opt.Offset,
	}, nil
}

