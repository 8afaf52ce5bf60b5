// Package service defines the backend-agnostic contract for the task store.
package service

import (
	"context"
	"errors"
)

// ErrNetwork marks a failed round-trip to the store: transport failure,
// non-success status, or an unreadable response.
var ErrNetwork = errors.New("network error")

// Store defines the operations the client issues against the remote task store.
// Hosts and the controller never talk HTTP directly.
// No operation retries; a failed attempt is returned to the caller as is.
type Store interface {
	// FetchAll returns the current list in store order.
	FetchAll(ctx context.Context) ([]Task, error)

	// Create submits a new task. It does not return the created record;
	// callers reload to observe it.
	Create(ctx context.Context, title string) error

	// SetCompleted changes the completed flag of one task.
	SetCompleted(ctx context.Context, id TaskID, completed bool) error

	// Remove deletes one task.
	Remove(ctx context.Context, id TaskID) error
}
