package usecase

import (
	"context"
	"errors"
	"time"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
	"smart-todo/pkg/gcalendar"
)

// syncCalendar brings the mirrored event of t in line with its due date and
// returns the event ID to store. Failures are logged and never surface:
// the task store stays the source of truth.
func (uc *implUseCase) syncCalendar(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return t.CalendarEventID
	}

	if t.DueDate == nil {
		if t.CalendarEventID != "" {
			uc.deleteEvent(ctx, t.CalendarEventID)
		}
		return ""
	}

	if t.CalendarEventID != "" {
		_, err := uc.calendar.UpdateEvent(ctx, t.CalendarEventID, uc.eventRequest(t))
		if err == nil {
			return t.CalendarEventID
		}
		if !errors.Is(err, gcalendar.ErrEventNotFound) {
			uc.metrics.IncCalendarFailure("update")
			uc.l.Warnf(ctx, "uc.syncCalendar: update event %s for task %s (non-fatal): %v", t.CalendarEventID, t.ID, err)
			return t.CalendarEventID
		}
		// Removed on the calendar side: recreate below.
	}

	event, err := uc.calendar.CreateEvent(ctx, uc.eventRequest(t))
	if err != nil {
		uc.metrics.IncCalendarFailure("insert")
		uc.l.Warnf(ctx, "uc.syncCalendar: create event for task %s (non-fatal): %v", t.ID, err)
		return ""
	}
	return event.ID
}

func (uc *implUseCase) deleteEvent(ctx context.Context, eventID string) {
	if uc.calendar == nil || eventID == "" {
		return
	}
	err := uc.calendar.DeleteEvent(ctx, uc.calendarID, eventID)
	if err != nil && !errors.Is(err, gcalendar.ErrEventNotFound) {
		uc.metrics.IncCalendarFailure("delete")
		uc.l.Warnf(ctx, "uc.deleteEvent: delete event %s (non-fatal): %v", eventID, err)
	}
}

func (uc *implUseCase) eventRequest(t model.Task) gcalendar.EventRequest {
	req := gcalendar.EventRequest{
		CalendarID: uc.calendarID,
		Summary:    t.Title,
		StartTime:  *t.DueDate,
		EndTime:    t.DueDate.Add(uc.eventDuration),
	}
	if t.Description != nil {
		req.Description = *t.Description
	}
	if name := uc.parser.Location().String(); name != "Local" {
		req.Timezone = name
	}
	return req
}

// saveCalendarEventID stores a new event ID on t. A failed write is logged
// and t is returned unchanged.
func (uc *implUseCase) saveCalendarEventID(ctx context.Context, t model.Task, eventID string) model.Task {
	withEvent := t
	withEvent.CalendarEventID = eventID

	updated, err := uc.repo.UpdateTask(ctx, updateOptions(withEvent, t.UpdatedAt))
	if err != nil || updated.ID == "" {
		uc.l.Warnf(ctx, "uc.saveCalendarEventID: task %s event %s: %v", t.ID, eventID, err)
		return t
	}
	return updated
}

func updateOptions(t model.Task, updatedAt time.Time) repo.UpdateTaskOptions {
	return repo.UpdateTaskOptions{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		DueDate:         t.DueDate,
		Priority:        t.Priority,
		Category:        t.Category,
		Completed:       t.Completed,
		CalendarEventID: t.CalendarEventID,
		UpdatedAt:       updatedAt,
	}
}
