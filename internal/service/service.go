// Package service implements the task use cases on top of the repository,
// clock and id ports. Commands talk to TaskService only; storage details
// stay behind ports.TaskRepository.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"notes/internal/domain"
	"notes/internal/ports"
)

// TaskService coordinates task creation, listing and status changes.
// Errors from the repository are returned unchanged so callers can match
// them with errors.As.
type TaskService struct {
	repo  ports.TaskRepository
	clock ports.Clock
	ids   ports.IDProvider
	log   log.FieldLogger
}

// New creates a TaskService. The logger defaults to the standard logrus
// logger.
func New(repo ports.TaskRepository, clock ports.Clock, ids ports.IDProvider, opts ...Option) *TaskService {
	s := &TaskService{
		repo:  repo,
		clock: clock,
		ids:   ids,
		log:   log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTask creates an open task with a freshly minted id.
func (s *TaskService) AddTask(ctx context.Context, title, description string) (domain.Task, error) {
	task, err := domain.NewTask(s.ids.NewID(), title, description, s.clock.Now())
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.repo.Add(ctx, task); err != nil {
		return domain.Task{}, err
	}
	s.log.WithFields(log.Fields{"id": task.ID, "title": task.Title}).Debug("task added")
	return task, nil
}

// ListTasks returns one page of tasks and the total number of tasks.
// A page past the end is empty but still reports the true total.
func (s *TaskService) ListTasks(ctx context.Context, q ListQuery) ([]domain.Task, int, error) {
	if q.Page <= 0 {
		return nil, 0, &domain.ValidationError{Field: "page", Message: fmt.Sprintf("must be positive, got %d", q.Page)}
	}
	if q.PageSize <= 0 {
		return nil, 0, &domain.ValidationError{Field: "page size", Message: fmt.Sprintf("must be positive, got %d", q.PageSize)}
	}
	key, err := domain.ParseSortKey(q.SortBy)
	if err != nil {
		return nil, 0, err
	}
	order, err := domain.ParseOrder(q.Order)
	if err != nil {
		return nil, 0, err
	}

	all, err := s.repo.List(ctx, key, order)
	if err != nil {
		return nil, 0, err
	}

	start, end := pageBounds(q.Page, q.PageSize, len(all))
	page := make([]domain.Task, end-start)
	copy(page, all[start:end])
	return page, len(all), nil
}

// GetTask returns a single task.
func (s *TaskService) GetTask(ctx context.Context, id domain.TaskID) (domain.Task, error) {
	return s.repo.Get(ctx, id)
}

// MarkDone sets the task status to done.
func (s *TaskService) MarkDone(ctx context.Context, id domain.TaskID) (domain.Task, error) {
	return s.transition(ctx, id, domain.Done, domain.Task.MarkDone)
}

// MarkInProgress sets the task status to in progress.
func (s *TaskService) MarkInProgress(ctx context.Context, id domain.TaskID) (domain.Task, error) {
	return s.transition(ctx, id, domain.InProgress, domain.Task.MarkInProgress)
}

// Reopen sets the task status back to open.
func (s *TaskService) Reopen(ctx context.Context, id domain.TaskID) (domain.Task, error) {
	return s.transition(ctx, id, domain.Open, domain.Task.Reopen)
}

// transition applies a status change. A task already in the target status
// is returned as stored, without a write.
func (s *TaskService) transition(ctx context.Context, id domain.TaskID, target domain.Status, apply func(domain.Task, time.Time) domain.Task) (domain.Task, error) {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	entry := s.log.WithFields(log.Fields{"id": id, "status": target})
	if task.Status == target {
		entry.Debug("status unchanged")
		return task, nil
	}

	updated := apply(task, s.clock.Now())
	if err := s.repo.Update(ctx, updated); err != nil {
		return domain.Task{}, err
	}
	entry.WithField("from", task.Status).Debug("status changed")
	return updated, nil
}

// RemoveTask deletes a task.
func (s *TaskService) RemoveTask(ctx context.Context, id domain.TaskID) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	s.log.WithField("id", id).Debug("task removed")
	return nil
}

// ResolveID maps user input to a stored id. ref may be a full id or a
// prefix matching exactly one task.
func (s *TaskService) ResolveID(ctx context.Context, ref string) (domain.TaskID, error) {
	id, err := domain.ParseTaskID(ref)
	if err != nil {
		return "", err
	}

	_, err = s.repo.Get(ctx, id)
	if err == nil {
		return id, nil
	}
	if !isNotFound(err) {
		return "", err
	}

	all, err := s.repo.List(ctx, domain.SortByCreated, domain.Asc)
	if err != nil {
		return "", err
	}
	var matches []domain.TaskID
	for _, t := range all {
		if strings.HasPrefix(string(t.ID), string(id)) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", &domain.NotFoundError{ID: id}
	case 1:
		return matches[0], nil
	default:
		return "", &domain.ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("%q is ambiguous, matches %d tasks", ref, len(matches)),
		}
	}
}

func isNotFound(err error) bool {
	var nf *domain.NotFoundError
	return errors.As(err, &nf)
}
