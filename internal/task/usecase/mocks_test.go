package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var errDB = errors.New("db error")

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	mu      sync.Mutex
	tasks   map[string]model.Task
	fail    bool
	lastOpt repository.ListTasksOptions
	statsAt time.Time
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: map[string]model.Task{}}
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return model.Task{}, repository.ErrFailedToInsert
	}
	t := model.Task{
		ID:          opt.ID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
		Category:    opt.Category,
		CreatedAt:   opt.CreatedAt,
		UpdatedAt:   opt.CreatedAt,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return model.Task{}, repository.ErrFailedToGet
	}
	return m.tasks[opt.ID], nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastOpt = opt
	if m.fail {
		return nil, 0, repository.ErrFailedToList
	}
	var out []model.Task
	for _, t := range m.tasks {
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return model.Task{}, repository.ErrFailedToUpdate
	}
	t, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t.Title = opt.Title
	t.Description = opt.Description
	t.DueDate = opt.DueDate
	t.Priority = opt.Priority
	t.Category = opt.Category
	t.Completed = opt.Completed
	t.CalendarEventID = opt.CalendarEventID
	t.UpdatedAt = opt.UpdatedAt
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return repository.ErrFailedToDelete
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockRepo) GetStats(ctx context.Context, now time.Time) (model.TaskStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsAt = now
	if m.fail {
		return model.TaskStats{}, repository.ErrFailedToCount
	}
	var s model.TaskStats
	for _, t := range m.tasks {
		s.Total++
		if t.Completed {
			s.Completed++
		}
		if t.IsOverdue(now) {
			s.Overdue++
		}
	}
	s.Pending = s.Total - s.Completed
	return s, nil
}

// mockCalendar records calls and fails on demand.
type mockCalendar struct {
	created []gcalendar.EventRequest
	updated []string
	deleted []string

	createErr error
	updateErr error
	deleteErr error
	nextID    int
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	m.nextID++
	return &gcalendar.Event{ID: "evt-" + string(rune('0'+m.nextID)), Summary: req.Summary}, nil
}

func (m *mockCalendar) UpdateEvent(ctx context.Context, eventID string, req gcalendar.EventRequest) (*gcalendar.Event, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updated = append(m.updated, eventID)
	return &gcalendar.Event{ID: eventID, Summary: req.Summary}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}
