// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"tasksync/internal/service"
)

// ErrNotFound is returned when a task ID does not exist.
var ErrNotFound = errors.New("not found")

// Call is one recorded store operation.
type Call struct {
	Op        string // "FetchAll", "Create", "SetCompleted" or "Remove"
	ID        service.TaskID
	Title     string
	Completed bool
}

func (c Call) String() string {
	switch c.Op {
	case "Create":
		return fmt.Sprintf("Create(%q)", c.Title)
	case "SetCompleted":
		return fmt.Sprintf("SetCompleted(%s, %t)", c.ID, c.Completed)
	case "Remove":
		return fmt.Sprintf("Remove(%s)", c.ID)
	default:
		return c.Op + "()"
	}
}

// FakeStore is an in-memory implementation of service.Store for testing.
type FakeStore struct {
	mu     sync.Mutex
	tasks  []service.Task
	calls  []Call
	nextID int

	// Error injection for testing
	FetchAllErr     error
	CreateErr       error
	SetCompletedErr error
	RemoveErr       error

	// FetchHook, if set, runs at the start of FetchAll without the lock held.
	FetchHook func(ctx context.Context)
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{nextID: 1}
}

// AddTask adds a task with the next sequential ID and returns the ID.
func (f *FakeStore) AddTask(title string, completed bool) service.TaskID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.add(title, completed)
}

func (f *FakeStore) add(title string, completed bool) service.TaskID {
	id := service.TaskID(strconv.Itoa(f.nextID))
	f.nextID++
	f.tasks = append(f.tasks, service.Task{ID: id, Title: title, Completed: completed})
	return id
}

// Tasks returns a copy of the stored tasks.
func (f *FakeStore) Tasks() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]service.Task(nil), f.tasks...)
}

// Calls returns the recorded operations in order.
func (f *FakeStore) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallNames returns the recorded operations formatted with Call.String.
func (f *FakeStore) CallNames() []string {
	calls := f.Calls()
	names := make([]string, len(calls))
	for i, c := range calls {
		names[i] = c.String()
	}
	return names
}

// ResetCalls forgets recorded operations.
func (f *FakeStore) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// FetchAll implements service.Store.
func (f *FakeStore) FetchAll(ctx context.Context) ([]service.Task, error) {
	if f.FetchHook != nil {
		f.FetchHook(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: "FetchAll"})
	if f.FetchAllErr != nil {
		return nil, f.FetchAllErr
	}
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// Create implements service.Store.
func (f *FakeStore) Create(ctx context.Context, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: "Create", Title: title})
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.add(title, false)
	return nil
}

// SetCompleted implements service.Store.
func (f *FakeStore) SetCompleted(ctx context.Context, id service.TaskID, completed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: "SetCompleted", ID: id, Completed: completed})
	if f.SetCompletedErr != nil {
		return f.SetCompletedErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Completed = completed
			return nil
		}
	}
	return fmt.Errorf("%w: %w", service.ErrNetwork, ErrNotFound)
}

// Remove implements service.Store.
func (f *FakeStore) Remove(ctx context.Context, id service.TaskID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: "Remove", ID: id})
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %w", service.ErrNetwork, ErrNotFound)
}
