// Package jsonl implements a task repository persisted as one JSON record
// per line.
//
// Every mutation reads the whole file, applies the change in memory and
// rewrites the file by writing a temporary file in the same directory and
// renaming it over the original. A crash leaves either the old or the new
// content, never a mix.
//
// Any line that cannot be decoded fails the whole load with a
// *domain.CorruptStoreError; nothing is skipped or repaired. The file is not
// locked, so two processes writing the same store can lose updates.
package jsonl

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"notes/internal/domain"
	"notes/internal/ports"
)

var _ ports.TaskRepository = (*Repository)(nil)

// maxLineSize bounds a single record.
const maxLineSize = 1 << 20

// Repository is a file-backed task repository.
type Repository struct {
	path string
}

// Open returns a repository stored at path, creating the parent directory
// if needed. The file itself is created on first write.
func Open(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &Repository{path: path}, nil
}

// Path returns the file backing the repository.
func (r *Repository) Path() string { return r.path }

// Load reads every task from disk in file order.
func (r *Repository) Load() ([]domain.Task, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening store: %w", err)
	}
	defer f.Close()

	var tasks []domain.Task
	seen := make(map[domain.TaskID]int)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		t, err := Decode(line)
		if err != nil {
			return nil, &domain.CorruptStoreError{Path: r.path, Line: lineNo, Err: err}
		}
		if first, dup := seen[t.ID]; dup {
			return nil, &domain.CorruptStoreError{
				Path: r.path,
				Line: lineNo,
				Err:  fmt.Errorf("duplicate id %s (first on line %d)", t.ID, first),
			}
		}
		seen[t.ID] = lineNo
		tasks = append(tasks, t)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &domain.CorruptStoreError{Path: r.path, Line: lineNo + 1, Err: err}
		}
		return nil, fmt.Errorf("reading store: %w", err)
	}

	log.WithFields(log.Fields{"path": r.path, "tasks": len(tasks)}).Debug("store loaded")
	return tasks, nil
}

// save atomically replaces the file with tasks.
func (r *Repository) save(tasks []domain.Task) error {
	var buf bytes.Buffer
	for _, t := range tasks {
		line, err := Encode(t)
		if err != nil {
			return err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if err := writeFileAtomic(r.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	log.WithFields(log.Fields{"path": r.path, "tasks": len(tasks)}).Debug("store saved")
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}

func indexOf(tasks []domain.Task, id domain.TaskID) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Add implements ports.TaskRepository.
func (r *Repository) Add(_ context.Context, task domain.Task) error {
	tasks, err := r.Load()
	if err != nil {
		return err
	}
	if indexOf(tasks, task.ID) >= 0 {
		return &domain.DuplicateIDError{ID: task.ID}
	}
	return r.save(append(tasks, task))
}

// Get implements ports.TaskRepository.
func (r *Repository) Get(_ context.Context, id domain.TaskID) (domain.Task, error) {
	tasks, err := r.Load()
	if err != nil {
		return domain.Task{}, err
	}
	i := indexOf(tasks, id)
	if i < 0 {
		return domain.Task{}, &domain.NotFoundError{ID: id}
	}
	return tasks[i], nil
}

// List implements ports.TaskRepository.
func (r *Repository) List(_ context.Context, key domain.SortKey, order domain.Order) ([]domain.Task, error) {
	tasks, err := r.Load()
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	domain.SortTasks(tasks, key, order)
	return tasks, nil
}

// Update implements ports.TaskRepository.
func (r *Repository) Update(_ context.Context, task domain.Task) error {
	tasks, err := r.Load()
	if err != nil {
		return err
	}
	i := indexOf(tasks, task.ID)
	if i < 0 {
		return &domain.NotFoundError{ID: task.ID}
	}
	tasks[i] = task
	return r.save(tasks)
}

// Remove implements ports.TaskRepository.
func (r *Repository) Remove(_ context.Context, id domain.TaskID) error {
	tasks, err := r.Load()
	if err != nil {
		return err
	}
	i := indexOf(tasks, id)
	if i < 0 {
		return &domain.NotFoundError{ID: id}
	}
	return r.save(append(tasks[:i], tasks[i+1:]...))
}
