package http

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/nlparser"
	"smart-todo/pkg/response"
)

// Accepted due_date layouts besides RFC 3339. Zone-less values are read in
// the handler's location; a bare date means the end of that day.
const (
	dueDateMinuteLayout = "2006-01-02T15:04"
	dueDateSpaceLayout  = "2006-01-02 15:04"
)

// parseDueDate reads a client supplied due date.
func parseDueDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{dueDateMinuteLayout, dueDateSpaceLayout, response.DateTimeFormat} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	t, err := time.ParseInLocation(response.DateFormat, s, loc)
	if err != nil {
		return time.Time{}, errWrongDueDate
	}
	return datemath.EndOfDay(t), nil
}

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required"`
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toParseInput() task.ParseInput {
	return task.ParseInput{Text: r.Text}
}

func (r parseReq) toQuickCreateInput() task.QuickCreateInput {
	return task.QuickCreateInput{Text: r.Text}
}

// ---

type createReq struct {
	Title       string  `json:"title"       binding:"required"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    int     `json:"priority"`
	Category    string  `json:"category"`

	dueDate *time.Time
}

func (r *createReq) validate(loc *time.Location) error {
	if r.DueDate == nil || strings.TrimSpace(*r.DueDate) == "" {
		return nil
	}
	t, err := parseDueDate(*r.DueDate, loc)
	if err != nil {
		return err
	}
	r.dueDate = &t
	return nil
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.dueDate,
		Priority:    nlparser.Priority(r.Priority),
		Category:    nlparser.Category(r.Category),
	}
}

// ---

type listReq struct {
	Completed *bool  `form:"completed"`
	Category  string `form:"category"`
	Priority  int    `form:"priority"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) validate() error {
	if r.Limit < 0 || r.Offset < 0 {
		return errWrongQuery
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Completed: r.Completed,
		Category:  nlparser.Category(r.Category),
		Priority:  nlparser.Priority(r.Priority),
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// ---

// updateReq keeps due_date raw so that an explicit null can clear it.
type updateReq struct {
	ID          string          `json:"-"` // populated from URI param
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	DueDate     json.RawMessage `json:"due_date"`
	Priority    *int            `json:"priority"`
	Category    *string         `json:"category"`
	Completed   *bool           `json:"completed"`

	dueDate      *time.Time
	clearDueDate bool
}

func (r *updateReq) validate(loc *time.Location) error {
	if len(r.DueDate) == 0 {
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(r.DueDate), []byte("null")) {
		r.clearDueDate = true
		return nil
	}
	var raw string
	if err := json.Unmarshal(r.DueDate, &raw); err != nil {
		return errWrongDueDate
	}
	if strings.TrimSpace(raw) == "" {
		r.clearDueDate = true
		return nil
	}
	t, err := parseDueDate(raw, loc)
	if err != nil {
		return err
	}
	r.dueDate = &t
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	input := task.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      r.dueDate,
		ClearDueDate: r.clearDueDate,
		Completed:    r.Completed,
	}
	if r.Priority != nil {
		p := nlparser.Priority(*r.Priority)
		input.Priority = &p
	}
	if r.Category != nil {
		c := nlparser.Category(*r.Category)
		input.Category = &c
	}
	return input
}

// --- Response DTOs ---

type taskResp struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	DueDate     *response.Timestamp `json:"due_date"`
	Priority    int                 `json:"priority"`
	Category    string              `json:"category"`
	Completed   bool                `json:"completed"`
	CreatedAt   response.Timestamp  `json:"created_at"`
	UpdatedAt   response.Timestamp  `json:"updated_at"`
	IsOverdue   bool                `json:"is_overdue"`
}

type parsedTaskResp struct {
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	DueDate     *response.Timestamp `json:"due_date"`
	Priority    int                 `json:"priority"`
	Category    string              `json:"category"`
	Confidence  nlparser.Confidence `json:"confidence"`
	Suggestions []string            `json:"suggestions"`
}

type previewResp struct {
	Title    string              `json:"title"`
	DueDate  *response.Timestamp `json:"due_date"`
	Priority int                 `json:"priority"`
	Category string              `json:"category"`
}

type parseResp struct {
	OriginalText string         `json:"original_text"`
	ParsedTask   parsedTaskResp `json:"parsed_task"`
	Preview      previewResp    `json:"preview"`
}

type quickCreateResp struct {
	Task  taskResp  `json:"task"`
	Parse parseResp `json:"parse"`
}

type listMetaResp struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type listResp struct {
	Tasks []taskResp   `json:"tasks"`
	Meta  listMetaResp `json:"meta"`
}

type statsResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

func (h *handler) inLoc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(h.loc)
	return &v
}

func (h *handler) newTaskResp(t model.Task, now time.Time) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     response.NewTimestamp(h.inLoc(t.DueDate)),
		Priority:    int(t.Priority),
		Category:    string(t.Category),
		Completed:   t.Completed,
		CreatedAt:   response.Timestamp(t.CreatedAt.In(h.loc)),
		UpdatedAt:   response.Timestamp(t.UpdatedAt.In(h.loc)),
		IsOverdue:   t.IsOverdue(now),
	}
}

// newParseResp renders a parse result. The preview holds only the fields
// a task form prefills.
func (h *handler) newParseResp(r nlparser.Result) parseResp {
	suggestions := r.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	due := response.NewTimestamp(h.inLoc(r.DueDate))
	return parseResp{
		OriginalText: r.OriginalText,
		ParsedTask: parsedTaskResp{
			Title:       r.Title,
			Description: r.Description,
			DueDate:     due,
			Priority:    int(r.Priority),
			Category:    string(r.Category),
			Confidence:  r.Confidence,
			Suggestions: suggestions,
		},
		Preview: previewResp{
			Title:    r.Title,
			DueDate:  due,
			Priority: int(r.Priority),
			Category: string(r.Category),
		},
	}
}

func (h *handler) newQuickCreateResp(o task.QuickCreateOutput) quickCreateResp {
	return quickCreateResp{
		Task:  h.newTaskResp(o.Task, time.Now()),
		Parse: h.newParseResp(o.Result),
	}
}

func (h *handler) newListResp(o task.ListOutput) listResp {
	now := time.Now()
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, h.newTaskResp(t, now))
	}
	return listResp{
		Tasks: tasks,
		Meta: listMetaResp{
			Total:  o.Total,
			Limit:  o.Limit,
			Offset: o.Offset,
		},
	}
}

func (h *handler) newStatsResp(o task.StatsOutput) statsResp {
	return statsResp{
		Total:     o.Stats.Total,
		Completed: o.Stats.Completed,
		Pending:   o.Stats.Pending,
		Overdue:   o.Stats.Overdue,
	}
}
