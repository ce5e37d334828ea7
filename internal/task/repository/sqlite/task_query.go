package sqlite

import (
	"strings"

	repo "smart-todo/internal/task/repository"
)

// defaultOrder is priority first, then the nearest due date with undated
// tasks last, then the newest.
const defaultOrder = "priority DESC, due_date IS NULL, due_date ASC, created_at DESC"

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.CalendarEventID != "" {
		conditions = append(conditions, "calendar_event_id = ?")
		args = append(args, opt.CalendarEventID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildFilters returns the list filter conditions shared by count and page queries.
func (r *implRepository) buildFilters(opt repo.ListTasksOptions) ([]string, []any) {
	var conditions []string
	var args []any

	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *opt.Completed)
	}
	if opt.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, string(opt.Category))
	}
	if opt.Priority != 0 {
		conditions = append(conditions, "priority = ?")
		args = append(args, int(opt.Priority))
	}
	return conditions, args
}

// buildCountQuery builds WHERE clause + args for counting Tasks (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := r.buildFilters(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	conditions, args := r.buildFilters(opt)

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY "+defaultOrder)

	// SQLite only accepts OFFSET after a LIMIT; -1 means unbounded.
	if opt.Limit > 0 || opt.Offset > 0 {
		limit := opt.Limit
		if limit <= 0 {
			limit = -1
		}
		parts = append(parts, "LIMIT ?")
		args = append(args, limit)
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
