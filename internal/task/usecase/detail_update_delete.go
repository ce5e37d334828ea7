package usecase

import (
	"context"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	repo "smart-todo/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (output task.DetailOutput, err error) {
	defer func() { uc.metrics.IncTaskOperation("detail", err) }()

	t, err := uc.getTask(ctx, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (output task.UpdateOutput, err error) {
	defer func() { uc.metrics.IncTaskOperation("update", err) }()

	existing, err := uc.getTask(ctx, input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	next, err := applyUpdate(existing, input)
	if err != nil {
		return task.UpdateOutput{}, err
	}
	if calendarFieldsChanged(existing, next) {
		next.CalendarEventID = uc.syncCalendar(ctx, next)
	}

	updated, err := uc.repo.UpdateTask(ctx, updateOptions(next, uc.now()))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes a Task and its calendar event. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) (err error) {
	defer func() { uc.metrics.IncTaskOperation("delete", err) }()

	existing, err := uc.getTask(ctx, id)
	if err != nil {
		return err
	}

	uc.deleteEvent(ctx, existing.CalendarEventID)

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	uc.l.Infof(ctx, "uc.Delete: deleted task id=%s", id)
	return nil
}

func (uc *implUseCase) getTask(ctx context.Context, id string) (model.Task, error) {
	if id == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getTask GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// applyUpdate returns existing with the non-nil fields of input applied.
func applyUpdate(existing model.Task, input task.UpdateInput) (model.Task, error) {
	next := existing

	if input.Title != nil {
		title, err := normalizeTitle(*input.Title)
		if err != nil {
			return model.Task{}, err
		}
		next.Title = title
	}
	if input.Description != nil {
		next.Description = optionalText(input.Description)
	}
	switch {
	case input.ClearDueDate:
		next.DueDate = nil
	case input.DueDate != nil:
		due := *input.DueDate
		next.DueDate = &due
	}
	if input.Priority != nil {
		priority, err := resolvePriority(*input.Priority)
		if err != nil {
			return model.Task{}, err
		}
		next.Priority = priority
	}
	if input.Category != nil {
		category, err := resolveCategory(*input.Category)
		if err != nil {
			return model.Task{}, err
		}
		next.Category = category
	}
	if input.Completed != nil {
		next.Completed = *input.Completed
	}
	return next, nil
}

// calendarFieldsChanged reports whether the mirrored event needs a refresh.
func calendarFieldsChanged(before, after model.Task) bool {
	return before.Title != after.Title ||
		!sameText(before.Description, after.Description) ||
		!sameTime(before.DueDate, after.DueDate)
}

func sameText(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
