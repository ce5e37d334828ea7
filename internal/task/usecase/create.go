package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	repo "smart-todo/internal/task/repository"
	"smart-todo/pkg/nlparser"
)

// newTask is a validated task ready to be stored.
type newTask struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    nlparser.Priority
	Category    nlparser.Category
}

// Create validates and stores a task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (output task.CreateOutput, err error) {
	defer func() { uc.metrics.IncTaskOperation("create", err) }()

	title, err := normalizeTitle(input.Title)
	if err != nil {
		return task.CreateOutput{}, err
	}
	priority, err := resolvePriority(input.Priority)
	if err != nil {
		return task.CreateOutput{}, err
	}
	category, err := resolveCategory(input.Category)
	if err != nil {
		return task.CreateOutput{}, err
	}

	created, err := uc.createTask(ctx, newTask{
		Title:       title,
		Description: optionalText(input.Description),
		DueDate:     input.DueDate,
		Priority:    priority,
		Category:    category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create createTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: created}, nil
}

// createTask persists t and mirrors it to the calendar when it has a due date.
func (uc *implUseCase) createTask(ctx context.Context, t newTask) (model.Task, error) {
	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:          uuid.NewString(),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Category:    t.Category,
		CreatedAt:   uc.now(),
	})
	if err != nil {
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "uc.createTask: created task id=%s priority=%d category=%s", created.ID, created.Priority, created.Category)

	eventID := uc.syncCalendar(ctx, created)
	if eventID == created.CalendarEventID {
		return created, nil
	}
	return uc.saveCalendarEventID(ctx, created, eventID), nil
}
