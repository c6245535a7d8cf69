package sqlite

import (
	"fmt"

	repo "task-scheduler/internal/task/repository"
)

const defaultListLimit = 50

// buildListFilter builds the WHERE clause + args for ListTasks.
func (r *implRepository) buildListFilter(opt repo.ListTasksOptions) (string, []any) {
	if opt.OpenOnly {
		return "completed_seconds < required_seconds", nil
	}
	return "1=1", nil
}

// buildPage builds the LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildPage(opt repo.ListTasksOptions) string {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	return fmt.Sprintf("LIMIT %d OFFSET %d", limit, max(0, opt.Offset))
}
