// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"notes/internal/adapters/memory"
	"notes/internal/domain"
	"notes/internal/ports"
)

// Epoch is the default time of a FixedClock.
var Epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// FixedClock is a ports.Clock that only moves when told to.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock stopped at t, or at Epoch if t is zero.
func NewFixedClock(t time.Time) *FixedClock {
	if t.IsZero() {
		t = Epoch
	}
	return &FixedClock{now: t}
}

// Now implements ports.Clock.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SequenceIDs is a ports.IDProvider returning "id-1", "id-2", ...
type SequenceIDs struct {
	mu sync.Mutex
	n  int
}

// NewID implements ports.IDProvider.
func (s *SequenceIDs) NewID() domain.TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return domain.TaskID(fmt.Sprintf("id-%d", s.n))
}

// StaticID is a ports.IDProvider that always returns the same id.
type StaticID domain.TaskID

// NewID implements ports.IDProvider.
func (s StaticID) NewID() domain.TaskID { return domain.TaskID(s) }

// StubRepository wraps an in-memory repository with error injection.
// A non-nil error field is returned instead of calling the wrapped method.
type StubRepository struct {
	*memory.Repository

	AddErr    error
	GetErr    error
	ListErr   error
	UpdateErr error
	RemoveErr error

	Updates int
}

var _ ports.TaskRepository = (*StubRepository)(nil)

// NewStubRepository creates a stub seeded with tasks.
func NewStubRepository(seed ...domain.Task) *StubRepository {
	return &StubRepository{Repository: memory.NewRepository(seed...)}
}

// Add implements ports.TaskRepository.
func (s *StubRepository) Add(ctx context.Context, t domain.Task) error {
	if s.AddErr != nil {
		return s.AddErr
	}
	return s.Repository.Add(ctx, t)
}

// Get implements ports.TaskRepository.
func (s *StubRepository) Get(ctx context.Context, id domain.TaskID) (domain.Task, error) {
	if s.GetErr != nil {
		return domain.Task{}, s.GetErr
	}
	return s.Repository.Get(ctx, id)
}

// List implements ports.TaskRepository.
func (s *StubRepository) List(ctx context.Context, key domain.SortKey, order domain.Order) ([]domain.Task, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Repository.List(ctx, key, order)
}

// Update implements ports.TaskRepository.
func (s *StubRepository) Update(ctx context.Context, t domain.Task) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.Updates++
	return s.Repository.Update(ctx, t)
}

// Remove implements ports.TaskRepository.
func (s *StubRepository) Remove(ctx context.Context, id domain.TaskID) error {
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	return s.Repository.Remove(ctx, id)
}
