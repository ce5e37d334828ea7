package usecase

import (
	"context"

	"smart-todo/internal/task"
)

// Toggle flips the completion flag of a Task.
func (uc *implUseCase) Toggle(ctx context.Context, id string) (output task.ToggleOutput, err error) {
	defer func() { uc.metrics.IncTaskOperation("toggle", err) }()

	existing, err := uc.getTask(ctx, id)
	if err != nil {
		return task.ToggleOutput{}, err
	}

	existing.Completed = !existing.Completed
	updated, err := uc.repo.UpdateTask(ctx, updateOptions(existing, uc.now()))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTask: %v", err)
		return task.ToggleOutput{}, err
	}
	if updated.ID == "" {
		return task.ToggleOutput{}, task.ErrTaskNotFound
	}
	return task.ToggleOutput{Task: updated}, nil
}

// Stats summarizes the task store as of now.
func (uc *implUseCase) Stats(ctx context.Context) (output task.StatsOutput, err error) {
	defer func() { uc.metrics.IncTaskOperation("stats", err) }()

	stats, err := uc.repo.GetStats(ctx, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats GetStats: %v", err)
		return task.StatsOutput{}, err
	}
	return task.StatsOutput{Stats: stats}, nil
}
