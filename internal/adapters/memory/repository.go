// Package memory implements an in-process task repository.
package memory

import (
	"context"
	"sync"

	"notes/internal/domain"
	"notes/internal/ports"
)

var _ ports.TaskRepository = (*Repository)(nil)

// Repository keeps tasks in a map. Nothing survives the process.
type Repository struct {
	mu    sync.RWMutex
	tasks map[domain.TaskID]domain.Task
}

// NewRepository creates a repository preloaded with seed tasks.
// A later seed with the same id replaces an earlier one.
func NewRepository(seed ...domain.Task) *Repository {
	r := &Repository{tasks: make(map[domain.TaskID]domain.Task, len(seed))}
	for _, t := range seed {
		r.tasks[t.ID] = t
	}
	return r
}

// Add implements ports.TaskRepository.
func (r *Repository) Add(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[task.ID]; exists {
		return &domain.DuplicateIDError{ID: task.ID}
	}
	r.tasks[task.ID] = task
	return nil
}

// Get implements ports.TaskRepository.
func (r *Repository) Get(_ context.Context, id domain.TaskID) (domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, &domain.NotFoundError{ID: id}
	}
	return t, nil
}

// List implements ports.TaskRepository.
func (r *Repository) List(_ context.Context, key domain.SortKey, order domain.Order) ([]domain.Task, error) {
	r.mu.RLock()
	result := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		result = append(result, t)
	}
	r.mu.RUnlock()

	domain.SortTasks(result, key, order)
	return result, nil
}

// Update implements ports.TaskRepository.
func (r *Repository) Update(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		return &domain.NotFoundError{ID: task.ID}
	}
	r.tasks[task.ID] = task
	return nil
}

// Remove implements ports.TaskRepository.
func (r *Repository) Remove(_ context.Context, id domain.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return &domain.NotFoundError{ID: id}
	}
	delete(r.tasks, id)
	return nil
}

// Len returns the number of stored tasks.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
