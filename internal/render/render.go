// Package render rebuilds the task list in the page from a fetched task slice.
package render

import (
	"context"

	"tasksync/internal/page"
	"tasksync/internal/sanitize"
	"tasksync/internal/service"
)

// Actions receives row interactions.
type Actions interface {
	Toggle(ctx context.Context, id service.TaskID, completed bool) error
	Delete(ctx context.Context, id service.TaskID) error
}

// Render replaces the list wholesale with one row per task, in the order given.
// An empty slice hides the list and shows the empty state.
func Render(doc *page.Document, tasks []service.Task, actions Actions) {
	rows := make([]page.Row, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, newRow(task, actions))
	}

	doc.Update(func(v *page.View) {
		if len(rows) == 0 {
			v.List.Hidden = true
			v.List.Rows = nil
			v.EmptyState.Hidden = false
			return
		}
		v.List.Hidden = false
		v.EmptyState.Hidden = true
		v.List.Rows = rows
	})
}

func newRow(task service.Task, actions Actions) page.Row {
	id := task.ID
	row := page.Row{
		TaskID:    id.String(),
		Completed: task.Completed,
		Title:     task.Title,
		TitleHTML: sanitize.Escape(task.Title),
	}
	if actions == nil {
		return row
	}
	row.OnToggle(func(ctx context.Context, checked bool) error {
		return actions.Toggle(ctx, id, checked)
	})
	row.OnDelete(func(ctx context.Context) error {
		return actions.Delete(ctx, id)
	})
	return row
}
