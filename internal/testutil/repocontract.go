package testutil

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes/internal/domain"
	"notes/internal/ports"
)

// MakeTask builds a valid task created offset after Epoch.
func MakeTask(id, title string, offset time.Duration) domain.Task {
	at := Epoch.Add(offset)
	return domain.Task{
		ID:        domain.TaskID(id),
		Title:     title,
		Status:    domain.Open,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

// RepositoryContract runs the behaviour every ports.TaskRepository must
// share. newRepo must return an empty repository.
func RepositoryContract(t *testing.T, newRepo func(t *testing.T) ports.TaskRepository) {
	ctx := context.Background()

	t.Run("add and get", func(t *testing.T) {
		repo := newRepo(t)
		task := MakeTask("id-1", "Buy milk", 0)
		task.Description = "2% lactose-free"

		require.NoError(t, repo.Add(ctx, task))

		got, err := repo.Get(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, task, got)
	})

	t.Run("add duplicate", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Add(ctx, MakeTask("dup", "A", 0)))

		err := repo.Add(ctx, MakeTask("dup", "B", time.Second))

		var dup *domain.DuplicateIDError
		require.True(t, errors.As(err, &dup), "got %v", err)
		assert.Equal(t, domain.TaskID("dup"), dup.ID)

		got, err := repo.Get(ctx, "dup")
		require.NoError(t, err)
		assert.Equal(t, "A", got.Title, "duplicate add must not overwrite")
	})

	t.Run("get missing", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Get(ctx, "nope")

		var nf *domain.NotFoundError
		require.True(t, errors.As(err, &nf), "got %v", err)
		assert.Equal(t, domain.TaskID("nope"), nf.ID)
	})

	t.Run("update", func(t *testing.T) {
		repo := newRepo(t)
		task := MakeTask("up-1", "A", 0)
		require.NoError(t, repo.Add(ctx, task))

		done := task.MarkDone(Epoch.Add(time.Minute))
		require.NoError(t, repo.Update(ctx, done))

		got, err := repo.Get(ctx, "up-1")
		require.NoError(t, err)
		assert.Equal(t, done, got)
	})

	t.Run("update missing", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.Update(ctx, MakeTask("ghost", "A", 0))

		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf), "got %v", err)
	})

	t.Run("remove", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Add(ctx, MakeTask("rm-1", "A", 0)))

		require.NoError(t, repo.Remove(ctx, "rm-1"))

		_, err := repo.Get(ctx, "rm-1")
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf), "got %v", err)

		err = repo.Remove(ctx, "rm-1")
		assert.True(t, errors.As(err, &nf), "second remove: got %v", err)
	})

	t.Run("list empty", func(t *testing.T) {
		repo := newRepo(t)

		tasks, err := repo.List(ctx, domain.SortByCreated, domain.Asc)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("list ordering", func(t *testing.T) {
		repo := newRepo(t)
		b := MakeTask("b", "Apple", time.Minute)
		b.Status = domain.Done
		for _, task := range []domain.Task{
			MakeTask("c", "Banana", 2*time.Minute),
			MakeTask("a", "Cherry", time.Minute),
			b,
			MakeTask("d", "Apple", 0),
		} {
			require.NoError(t, repo.Add(ctx, task))
		}

		tests := []struct {
			key   domain.SortKey
			order domain.Order
			want  []domain.TaskID
		}{
			{domain.SortByCreated, domain.Asc, []domain.TaskID{"d", "a", "b", "c"}},
			{domain.SortByCreated, domain.Desc, []domain.TaskID{"c", "a", "b", "d"}},
			{domain.SortByTitle, domain.Asc, []domain.TaskID{"b", "d", "c", "a"}},
			{domain.SortByTitle, domain.Desc, []domain.TaskID{"a", "c", "b", "d"}},
			{domain.SortByStatus, domain.Asc, []domain.TaskID{"a", "c", "d", "b"}},
			{domain.SortByStatus, domain.Desc, []domain.TaskID{"b", "a", "c", "d"}},
		}
		for _, tt := range tests {
			tasks, err := repo.List(ctx, tt.key, tt.order)
			require.NoError(t, err)
			got := make([]domain.TaskID, len(tasks))
			for i, task := range tasks {
				got[i] = task.ID
			}
			assert.Equal(t, tt.want, got, "%s %s", tt.key, tt.order)
		}
	})

	t.Run("list many", func(t *testing.T) {
		repo := newRepo(t)
		for i := 0; i < 50; i++ {
			require.NoError(t, repo.Add(ctx, MakeTask(fmt.Sprintf("t%02d", i), "T", time.Duration(i)*time.Second)))
		}

		tasks, err := repo.List(ctx, domain.SortByCreated, domain.Asc)
		require.NoError(t, err)
		require.Len(t, tasks, 50)
		assert.Equal(t, domain.TaskID("t00"), tasks[0].ID)
		assert.Equal(t, domain.TaskID("t49"), tasks[49].ID)
	})
}
