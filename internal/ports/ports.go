// Package ports defines the capabilities the task service depends on.
// Adapters implement them; the service never imports an adapter.
package ports

import (
	"context"
	"time"

	"notes/internal/domain"
)

// TaskRepository owns the authoritative collection of tasks.
type TaskRepository interface {
	// Add stores a new task.
	// Returns *domain.DuplicateIDError if the id is already stored.
	Add(ctx context.Context, task domain.Task) error

	// Get returns the task with the given id.
	// Returns *domain.NotFoundError if absent.
	Get(ctx context.Context, id domain.TaskID) (domain.Task, error)

	// List returns every task ordered by key and order, ties broken by id
	// ascending.
	List(ctx context.Context, key domain.SortKey, order domain.Order) ([]domain.Task, error)

	// Update replaces a stored task as a whole.
	// Returns *domain.NotFoundError if absent.
	Update(ctx context.Context, task domain.Task) error

	// Remove deletes the task with the given id.
	// Returns *domain.NotFoundError if absent.
	Remove(ctx context.Context, id domain.TaskID) error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// IDProvider mints unique task ids.
type IDProvider interface {
	NewID() domain.TaskID
}
