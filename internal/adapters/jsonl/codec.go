package jsonl

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"notes/internal/domain"
)

// codec is sonic's std-compatible config that also rejects unknown fields.
var codec = sonic.Config{
	EscapeHTML:            true,
	SortMapKeys:           true,
	CompactMarshaler:      true,
	CopyString:            true,
	ValidateString:        true,
	DisallowUnknownFields: true,
}.Froze()

// record is the on-disk shape of one task.
type record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Encode serializes a task as a single JSON line without the trailing
// newline. Tasks that would not decode back unchanged are rejected.
func Encode(t domain.Task) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("encoding task %s: %w", t.ID, err)
	}
	rec := record{
		ID:          string(t.ID),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	b, err := codec.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding task %s: %w", t.ID, err)
	}
	return b, nil
}

// Decode parses one line produced by Encode and validates the result.
func Decode(line []byte) (domain.Task, error) {
	var rec record
	if err := codec.Unmarshal(line, &rec); err != nil {
		return domain.Task{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if rec.ID == "" {
		return domain.Task{}, errors.New("missing field id")
	}
	if rec.Status == "" {
		return domain.Task{}, errors.New("missing field status")
	}
	created, err := parseTime("created_at", rec.CreatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	updated, err := parseTime("updated_at", rec.UpdatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	t := domain.Task{
		ID:          domain.TaskID(rec.ID),
		Title:       rec.Title,
		Description: rec.Description,
		Status:      domain.Status(rec.Status),
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
	if err := t.Validate(); err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

func parseTime(field, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, fmt.Errorf("missing field %s", field)
	}
	ts, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("field %s: %w", field, err)
	}
	return ts.UTC(), nil
}
