package gcalendar

import (
	"context"
	"time"
)

// DefaultCalendarID is used when a request leaves CalendarID empty.
const DefaultCalendarID = "primary"

// ICalendar is the subset of the Calendar API the task service mirrors
// tasks into.
type ICalendar interface {
	CreateEvent(ctx context.Context, req EventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, eventID string, req EventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// EventRequest describes a timed event to insert or replace.
type EventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Ho_Chi_Minh"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
