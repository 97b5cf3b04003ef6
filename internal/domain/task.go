// Package domain holds the task model and its invariants.
package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// TaskID identifies a task. It is opaque to everything but the IDProvider
// that minted it.
type TaskID string

// ShortLen is the number of id characters shown in listings.
const ShortLen = 8

// Short returns the first ShortLen runes of the id.
func (id TaskID) Short() string {
	n := 0
	for i := range string(id) {
		if n == ShortLen {
			return string(id[:i])
		}
		n++
	}
	return string(id)
}

// ParseTaskID trims s and rejects empty ids.
func ParseTaskID(s string) (TaskID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid("id", "must not be empty")
	}
	return TaskID(s), nil
}

// Task is a unit of trackable work.
type Task struct {
	ID          TaskID
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask builds an open task stamped with now.
// Title and description are trimmed; an empty title and text that is not
// valid UTF-8 are rejected.
func NewTask(id TaskID, title, description string, now time.Time) (Task, error) {
	if strings.TrimSpace(string(id)) == "" {
		return Task{}, invalid("id", "must not be empty")
	}
	if !utf8.ValidString(string(id)) {
		return Task{}, invalid("id", "must be valid UTF-8")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, invalid("title", "must not be empty")
	}
	if !utf8.ValidString(title) {
		return Task{}, invalid("title", "must be valid UTF-8")
	}
	if !utf8.ValidString(description) {
		return Task{}, invalid("description", "must be valid UTF-8")
	}
	now = now.UTC()
	return Task{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      Open,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// MarkDone returns a copy of t with status Done.
func (t Task) MarkDone(now time.Time) Task { return t.withStatus(Done, now) }

// MarkInProgress returns a copy of t with status InProgress.
func (t Task) MarkInProgress(now time.Time) Task { return t.withStatus(InProgress, now) }

// Reopen returns a copy of t with status Open.
func (t Task) Reopen(now time.Time) Task { return t.withStatus(Open, now) }

// withStatus never lets UpdatedAt fall before CreatedAt, even if the
// clock went backwards.
func (t Task) withStatus(s Status, now time.Time) Task {
	now = now.UTC()
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.Status = s
	t.UpdatedAt = now
	return t
}

// Validate checks the invariants of a task read back from storage.
func (t Task) Validate() error {
	if strings.TrimSpace(string(t.ID)) == "" {
		return errors.New("empty id")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("empty title")
	}
	if !utf8.ValidString(string(t.ID)) || !utf8.ValidString(t.Title) || !utf8.ValidString(t.Description) {
		return errors.New("text is not valid UTF-8")
	}
	if !t.Status.Valid() {
		return errors.New("unknown status " + string(t.Status))
	}
	if t.CreatedAt.IsZero() || t.UpdatedAt.IsZero() {
		return errors.New("missing timestamp")
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return errors.New("updated_at before created_at")
	}
	return nil
}
