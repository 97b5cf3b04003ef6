// Package sqlite implements a task repository on a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"

	"notes/internal/domain"
	"notes/internal/ports"
)

var _ ports.TaskRepository = (*Repository)(nil)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT,
    status      TEXT NOT NULL,
    created_at  TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks (created_at);
`

const selectColumns = `id, title, description, status, created_at, updated_at`

// orderClauses maps each sort key to its ORDER BY expression. Status is
// ranked the same way domain.SortTasks ranks it.
var orderClauses = map[domain.SortKey]string{
	domain.SortByCreated: "created_at",
	domain.SortByUpdated: "updated_at",
	domain.SortByTitle:   "title",
	domain.SortByStatus:  "CASE status WHEN 'open' THEN 0 WHEN 'in_progress' THEN 1 WHEN 'done' THEN 2 ELSE 3 END",
}

// Repository stores tasks in a single table.
type Repository struct {
	conn *sql.DB
	path string
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("database path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One writer; also keeps ":memory:" databases on a single connection.
	conn.SetMaxOpenConns(1)

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Repository{conn: conn, path: path}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// Add implements ports.TaskRepository.
func (r *Repository) Add(ctx context.Context, task domain.Task) error {
	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO tasks (`+selectColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		string(task.ID),
		task.Title,
		nullString(task.Description),
		string(task.Status),
		formatTime(task.CreatedAt),
		formatTime(task.UpdatedAt),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return &domain.DuplicateIDError{ID: task.ID}
		}
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

// Get implements ports.TaskRepository.
func (r *Repository) Get(ctx context.Context, id domain.TaskID) (domain.Task, error) {
	row := r.conn.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM tasks WHERE id = ?`, string(id))
	t, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, &domain.NotFoundError{ID: id}
	}
	if err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

// List implements ports.TaskRepository.
func (r *Repository) List(ctx context.Context, key domain.SortKey, order domain.Order) ([]domain.Task, error) {
	expr, ok := orderClauses[key]
	if !ok {
		expr = orderClauses[domain.SortByCreated]
	}
	dir := "ASC"
	if order == domain.Desc {
		dir = "DESC"
	}
	query := fmt.Sprintf(`SELECT %s FROM tasks ORDER BY %s %s, id ASC`, selectColumns, expr, dir)

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// Update implements ports.TaskRepository.
func (r *Repository) Update(ctx context.Context, task domain.Task) error {
	res, err := r.conn.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?,
		    description = ?,
		    status = ?,
		    created_at = ?,
		    updated_at = ?
		WHERE id = ?`,
		task.Title,
		nullString(task.Description),
		string(task.Status),
		formatTime(task.CreatedAt),
		formatTime(task.UpdatedAt),
		string(task.ID),
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, task.ID)
}

// Remove implements ports.TaskRepository.
func (r *Repository) Remove(ctx context.Context, id domain.TaskID) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, id)
}

type scanner interface {
	Scan(dest ...any) error
}

// scan reads one row. Rows that break task invariants are reported as a
// corrupt store rather than returned.
func (r *Repository) scan(s scanner) (domain.Task, error) {
	var (
		id, title, status, created, updated string
		description                         sql.NullString
	)
	if err := s.Scan(&id, &title, &description, &status, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, err
		}
		return domain.Task{}, fmt.Errorf("scanning task: %w", err)
	}

	t := domain.Task{
		ID:          domain.TaskID(id),
		Title:       title,
		Description: description.String,
		Status:      domain.Status(status),
	}
	var err error
	if t.CreatedAt, err = parseTime(created); err != nil {
		return domain.Task{}, r.corrupt(id, err)
	}
	if t.UpdatedAt, err = parseTime(updated); err != nil {
		return domain.Task{}, r.corrupt(id, err)
	}
	if err := t.Validate(); err != nil {
		return domain.Task{}, r.corrupt(id, err)
	}
	return t, nil
}

func (r *Repository) corrupt(id string, err error) error {
	return &domain.CorruptStoreError{Path: r.path, Err: fmt.Errorf("task %s: %w", id, err)}
}

func requireAffected(res sql.Result, id domain.TaskID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return &domain.NotFoundError{ID: id}
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// nullString stores an empty description as NULL.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
