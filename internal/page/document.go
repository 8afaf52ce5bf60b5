// Package page holds the explicit page model the renderer writes into.
// Elements are addressed by the same stable IDs the browser markup uses.
package page

import (
	"context"
	"sync"
)

// Stable element IDs.
const (
	InputID      = "taskInput"
	ListID       = "tasksList"
	EmptyStateID = "emptyState"
	TotalID      = "totalTasks"
	CompletedID  = "completedTasks"
)

// Input is the new-task title field.
type Input struct {
	ID    string
	Value string
}

// List is the container of task rows.
type List struct {
	ID     string
	Hidden bool
	Rows   []Row
}

// EmptyState is the placeholder shown when there are no tasks.
type EmptyState struct {
	ID     string
	Hidden bool
}

// Text is an element holding display text.
type Text struct {
	ID      string
	Content string
}

// ToggleFunc handles a checkbox change on a row.
type ToggleFunc func(ctx context.Context, checked bool) error

// DeleteFunc handles the delete control on a row.
type DeleteFunc func(ctx context.Context) error

// Row is one rendered task. Listeners are attached explicitly and carry
// the task ID as captured data.
type Row struct {
	TaskID    string
	Completed bool
	Title     string // raw title, for non-markup hosts
	TitleHTML string // escaped title, the only form interpolated into markup

	onToggle ToggleFunc
	onDelete DeleteFunc
}

// OnToggle attaches the checkbox listener.
func (r *Row) OnToggle(fn ToggleFunc) { r.onToggle = fn }

// OnDelete attaches the delete listener.
func (r *Row) OnDelete(fn DeleteFunc) { r.onDelete = fn }

// Toggle dispatches a checkbox change to the attached listener.
func (r Row) Toggle(ctx context.Context, checked bool) error {
	if r.onToggle == nil {
		return nil
	}
	return r.onToggle(ctx, checked)
}

// Delete dispatches a delete activation to the attached listener.
func (r Row) Delete(ctx context.Context) error {
	if r.onDelete == nil {
		return nil
	}
	return r.onDelete(ctx)
}

// View is the plain element tree of the page.
type View struct {
	Input      Input
	List       List
	EmptyState EmptyState
	Total      Text
	Completed  Text
}

// Document guards a View. All writes go through Update.
type Document struct {
	mu   sync.RWMutex
	view View
}

// New returns the initial page: list hidden, empty state shown, counters zeroed.
func New() *Document {
	return &Document{view: View{
		Input:      Input{ID: InputID},
		List:       List{ID: ListID, Hidden: true},
		EmptyState: EmptyState{ID: EmptyStateID},
		Total:      Text{ID: TotalID, Content: "Total: 0 tasks"},
		Completed:  Text{ID: CompletedID, Content: "Completed: 0"},
	}}
}

// Update applies fn to the view under the write lock.
func (d *Document) Update(fn func(v *View)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(&d.view)
}

// Snapshot returns a copy of the view that later updates do not affect.
func (d *Document) Snapshot() View {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v := d.view
	v.List.Rows = append([]Row(nil), d.view.List.Rows...)
	return v
}

// InputValue returns the current text of the input field.
func (d *Document) InputValue() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.view.Input.Value
}

// SetInputValue replaces the text of the input field.
func (d *Document) SetInputValue(s string) {
	d.Update(func(v *View) { v.Input.Value = s })
}

// Row finds a rendered row by task ID.
func (d *Document) Row(taskID string) (Row, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, r := range d.view.List.Rows {
		if r.TaskID == taskID {
			return r, true
		}
	}
	return Row{}, false
}
