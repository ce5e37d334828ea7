package usecase

import (
	"time"

	"smart-todo/internal/metrics"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/gcalendar"
	pkgLog "smart-todo/pkg/log"
	"smart-todo/pkg/nlparser"
)

// DefaultEventDuration is the length of a mirrored calendar event.
const DefaultEventDuration = 30 * time.Minute

// Config holds the tunables of the task use case. Zero values fall back
// to defaults.
type Config struct {
	MaxInputLength int
	CalendarID     string
	EventDuration  time.Duration
	Clock          func() time.Time
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	parser   *nlparser.Parser
	calendar gcalendar.ICalendar // nil disables calendar mirroring
	metrics  *metrics.Metrics

	maxInputLength int
	calendarID     string
	eventDuration  time.Duration
	clock          func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *nlparser.Parser,
	calendar gcalendar.ICalendar,
	m *metrics.Metrics,
	cfg Config,
) *implUseCase {
	if cfg.MaxInputLength <= 0 {
		cfg.MaxInputLength = task.DefaultMaxInputLength
	}
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = DefaultEventDuration
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = gcalendar.DefaultCalendarID
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &implUseCase{
		l:              l,
		repo:           repo,
		parser:         parser,
		calendar:       calendar,
		metrics:        m,
		maxInputLength: cfg.MaxInputLength,
		calendarID:     cfg.CalendarID,
		eventDuration:  cfg.EventDuration,
		clock:          cfg.Clock,
	}
}

func (uc *implUseCase) now() time.Time {
	return uc.clock().In(uc.parser.Location())
}
