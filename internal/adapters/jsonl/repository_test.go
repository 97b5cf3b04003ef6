package jsonl_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes/internal/adapters/jsonl"
	"notes/internal/domain"
	"notes/internal/ports"
	"notes/internal/testutil"
)

func openRepo(t *testing.T) (*jsonl.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store", "tasks.jsonl")
	repo, err := jsonl.Open(path)
	require.NoError(t, err)
	return repo, path
}

func TestRepository_Contract(t *testing.T) {
	testutil.RepositoryContract(t, func(t *testing.T) ports.TaskRepository {
		repo, _ := openRepo(t)
		return repo
	})
}

func TestRepository_RoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()

	for _, n := range []int{0, 1, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			repo, path := openRepo(t)

			want := make(map[domain.TaskID]domain.Task, n)
			for i := 0; i < n; i++ {
				task := testutil.MakeTask(fmt.Sprintf("id-%d", i), fmt.Sprintf("Task <%d> \"quoted\"", i), time.Duration(i)*time.Millisecond+time.Duration(i))
				if i%2 == 0 {
					task.Description = "line one\nline two"
				}
				if i%3 == 0 {
					task = task.MarkInProgress(task.CreatedAt.Add(time.Hour))
				}
				require.NoError(t, repo.Add(ctx, task))
				want[task.ID] = task
			}

			reopened, err := jsonl.Open(path)
			require.NoError(t, err)
			loaded, err := reopened.List(ctx, domain.SortByCreated, domain.Asc)
			require.NoError(t, err)

			got := make(map[domain.TaskID]domain.Task, len(loaded))
			for _, task := range loaded {
				got[task.ID] = task
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestRepository_MissingFileIsEmpty(t *testing.T) {
	repo, path := openRepo(t)

	tasks, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "reads must not create the file")
}

func TestRepository_SkipsBlankLines(t *testing.T) {
	repo, path := openRepo(t)
	line, err := jsonl.Encode(testutil.MakeTask("id-1", "A", 0))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("\n"+string(line)+"\n   \n"), 0o644))

	tasks, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestRepository_CorruptLineFailsWholeLoad(t *testing.T) {
	good, err := jsonl.Encode(testutil.MakeTask("id-1", "A", 0))
	require.NoError(t, err)

	tests := []struct {
		name string
		bad  string
	}{
		{"invalid json", `{"id":"id-2","title":`},
		{"unknown field", `{"id":"id-2","title":"B","status":"open","created_at":"2025-01-01T12:00:00Z","updated_at":"2025-01-01T12:00:00Z","priority":1}`},
		{"missing status", `{"id":"id-2","title":"B","created_at":"2025-01-01T12:00:00Z","updated_at":"2025-01-01T12:00:00Z"}`},
		{"bad status", `{"id":"id-2","title":"B","status":"closed","created_at":"2025-01-01T12:00:00Z","updated_at":"2025-01-01T12:00:00Z"}`},
		{"bad timestamp", `{"id":"id-2","title":"B","status":"open","created_at":"yesterday","updated_at":"2025-01-01T12:00:00Z"}`},
		{"empty title", `{"id":"id-2","title":"  ","status":"open","created_at":"2025-01-01T12:00:00Z","updated_at":"2025-01-01T12:00:00Z"}`},
		{"updated before created", `{"id":"id-2","title":"B","status":"open","created_at":"2025-01-01T12:00:00Z","updated_at":"2024-01-01T12:00:00Z"}`},
		{"duplicate id", string(good)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo, path := openRepo(t)
			content := string(good) + "\n" + tt.bad + "\n"
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := repo.List(ctx, domain.SortByCreated, domain.Asc)
			var corrupt *domain.CorruptStoreError
			require.True(t, errors.As(err, &corrupt), "got %v", err)
			assert.Equal(t, path, corrupt.Path)
			assert.Equal(t, 2, corrupt.Line)

			_, err = repo.Get(ctx, "id-1")
			assert.True(t, errors.As(err, &corrupt), "get: got %v", err)

			err = repo.Add(ctx, testutil.MakeTask("id-3", "C", 0))
			assert.True(t, errors.As(err, &corrupt), "add: got %v", err)

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, content, string(after), "corrupt store must be left untouched")
		})
	}
}

func TestRepository_RewriteLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	repo, path := openRepo(t)

	require.NoError(t, repo.Add(ctx, testutil.MakeTask("id-1", "A", 0)))
	require.NoError(t, repo.Add(ctx, testutil.MakeTask("id-2", "B", time.Second)))
	require.NoError(t, repo.Remove(ctx, "id-1"))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.jsonl", entries[0].Name())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"id":"id-2"`)
}
