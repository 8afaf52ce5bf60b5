// Package controller runs the load, add, toggle and delete flows against a
// store and keeps the page in sync by reloading after every mutation.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"tasksync/internal/logging"
	"tasksync/internal/metrics"
	"tasksync/internal/page"
	"tasksync/internal/prompt"
	"tasksync/internal/render"
	"tasksync/internal/service"
	"tasksync/internal/stats"
)

// User-facing messages.
const (
	MsgEmptyTitle    = "Please enter a task title"
	MsgAddFailed     = "Error adding task"
	MsgConfirmDelete = "Are you sure you want to delete this task?"
)

var (
	// ErrEmptyTitle is returned by Add when the trimmed input is empty.
	ErrEmptyTitle = errors.New("task title is empty")

	// ErrCancelled is returned by Delete when the user declines.
	ErrCancelled = errors.New("cancelled")
)

// state is shared between a Controller and the views made by WithPrompter.
type state struct {
	store  service.Store
	doc    *page.Document
	logger *log.Logger

	// rows receives row listeners. It is the controller built by New, so
	// rows never inherit a request-scoped prompter.
	rows render.Actions

	// mu serializes applying a fetch result. Store calls never hold it.
	mu    sync.Mutex
	tasks []service.Task
	stats stats.Stats
}

// Controller orchestrates the flows. It is safe for concurrent use.
type Controller struct {
	*state
	prompter prompt.Prompter
}

// New creates a controller. A nil logger discards output.
func New(store service.Store, doc *page.Document, prompter prompt.Prompter, logger *log.Logger) *Controller {
	if logger == nil {
		logger = logging.Discard()
	}
	c := &Controller{
		state: &state{
			store:  store,
			doc:    doc,
			logger: logger,
		},
		prompter: prompter,
	}
	c.rows = c
	return c
}

// WithPrompter returns a controller that shares state and document with c
// but asks p for confirmations and alerts.
func (c *Controller) WithPrompter(p prompt.Prompter) *Controller {
	return &Controller{state: c.state, prompter: p}
}

// Document returns the page the controller renders into.
func (c *Controller) Document() *page.Document {
	return c.doc
}

// State returns a copy of the latest fetched tasks.
func (c *Controller) State() []service.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]service.Task(nil), c.tasks...)
}

// Stats returns the counts of the latest fetched tasks.
func (c *Controller) Stats() stats.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Load fetches the full list and rebuilds the page from it. On failure the
// page keeps its last rendered state.
func (c *Controller) Load(ctx context.Context) error {
	started := time.Now()

	tasks, err := c.store.FetchAll(ctx)
	if err != nil {
		c.logger.Error("failed to load tasks", "flow", metrics.FlowLoad, "err", err)
		metrics.Observe(metrics.FlowLoad, metrics.OutcomeError, started)
		return fmt.Errorf("load tasks: %w", err)
	}

	s := c.apply(tasks)
	c.logger.Debug("tasks loaded", "total", s.Total, "completed", s.Completed)
	metrics.Observe(metrics.FlowLoad, metrics.OutcomeSuccess, started)
	return nil
}

// apply replaces the held state and redraws. Whichever fetch is applied
// last determines what is shown.
func (c *Controller) apply(tasks []service.Task) stats.Stats {
	s := stats.Compute(tasks)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = tasks
	c.stats = s
	render.Render(c.doc, tasks, c.rows)
	stats.Apply(c.doc, s)
	metrics.RenderedTasks.Set(float64(len(tasks)))
	return s
}

// Add creates a task from the input field. An empty title is rejected
// locally. On success the input is cleared and the list reloaded.
func (c *Controller) Add(ctx context.Context) error {
	started := time.Now()

	title := strings.TrimSpace(c.doc.InputValue())
	if title == "" {
		c.alert(MsgEmptyTitle)
		metrics.Observe(metrics.FlowAdd, metrics.OutcomeInvalid, started)
		return ErrEmptyTitle
	}

	if err := c.store.Create(ctx, title); err != nil {
		c.logger.Error("failed to add task", "flow", metrics.FlowAdd, "err", err)
		c.alert(MsgAddFailed)
		metrics.Observe(metrics.FlowAdd, metrics.OutcomeError, started)
		return fmt.Errorf("add task: %w", err)
	}

	c.doc.SetInputValue("")
	metrics.Observe(metrics.FlowAdd, metrics.OutcomeSuccess, started)
	return c.Load(ctx)
}

// Submit puts text in the input field and runs Add.
func (c *Controller) Submit(ctx context.Context, text string) error {
	c.doc.SetInputValue(text)
	return c.Add(ctx)
}

// Toggle sets the completed flag of a task and reloads. A failure is only
// logged; the page is not rolled back.
func (c *Controller) Toggle(ctx context.Context, id service.TaskID, completed bool) error {
	started := time.Now()

	if err := c.store.SetCompleted(ctx, id, completed); err != nil {
		c.logger.Error("failed to update task", "flow", metrics.FlowToggle, "task_id", id, "err", err)
		metrics.Observe(metrics.FlowToggle, metrics.OutcomeError, started)
		return fmt.Errorf("update task %s: %w", id, err)
	}

	metrics.Observe(metrics.FlowToggle, metrics.OutcomeSuccess, started)
	return c.Load(ctx)
}

// Delete asks for confirmation, removes the task and reloads.
func (c *Controller) Delete(ctx context.Context, id service.TaskID) error {
	started := time.Now()

	if c.prompter == nil || !c.prompter.Confirm(MsgConfirmDelete) {
		metrics.Observe(metrics.FlowDelete, metrics.OutcomeCancelled, started)
		return ErrCancelled
	}

	if err := c.store.Remove(ctx, id); err != nil {
		c.logger.Error("failed to delete task", "flow", metrics.FlowDelete, "task_id", id, "err", err)
		metrics.Observe(metrics.FlowDelete, metrics.OutcomeError, started)
		return fmt.Errorf("delete task %s: %w", id, err)
	}

	metrics.Observe(metrics.FlowDelete, metrics.OutcomeSuccess, started)
	return c.Load(ctx)
}

func (c *Controller) alert(message string) {
	if c.prompter != nil {
		c.prompter.Alert(message)
	}
}
