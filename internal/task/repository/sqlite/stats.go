package sqlite

import (
	"context"
	"time"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
)

// GetStats counts all, completed and overdue tasks in one pass.
func (r *implRepository) GetStats(ctx context.Context, now time.Time) (model.TaskStats, error) {
	const query = `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN NOT completed AND due_date IS NOT NULL AND due_date < ? THEN 1 ELSE 0 END), 0)
		FROM tasks`

	var stats model.TaskStats
	if err := r.db.QueryRowContext(ctx, query, now.UTC()).Scan(&stats.Total, &stats.Completed, &stats.Overdue); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetStats"), err)
		return model.TaskStats{}, repo.ErrFailedToCount
	}
	stats.Pending = stats.Total - stats.Completed
	return stats, nil
}
